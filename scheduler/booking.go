package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Rohitsah12/healthFirst/apperrors"
	"github.com/Rohitsah12/healthFirst/models"
)

// BookingInput describes a request for a scheduled appointment slot.
type BookingInput struct {
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	ScheduledTime time.Time
	Priority      models.PriorityLevel
	Notes         string
}

// WalkInInput describes an unscheduled visit entering the queue immediately.
type WalkInInput struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	Priority  models.PriorityLevel
}

// BookAppointment creates a SCHEDULED visit for a slot. The availability the
// client saw is advisory; the conflict check runs again here, inside the
// transaction, with the competing rows locked. A slot taken between read and
// write surfaces as Conflict. The partial unique index on
// (doctor_id, scheduled_time) backs this up at commit time.
func (s *Service) BookAppointment(in BookingInput) (*models.Visit, error) {
	instant, err := s.validateFutureInstant(in.ScheduledTime)
	if err != nil {
		return nil, err
	}
	if err := s.ensurePatientExists(in.PatientID); err != nil {
		return nil, err
	}
	if err := s.ensureDoctorBookable(in.DoctorID); err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	var visit models.Visit
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSlotFree(tx, in.DoctorID, instant, uuid.Nil); err != nil {
			return err
		}

		visit = models.Visit{
			PatientID:     in.PatientID,
			DoctorID:      in.DoctorID,
			VisitType:     models.TypeScheduled,
			Priority:      priority,
			ScheduledTime: &instant,
			CurrentStatus: models.StatusScheduled,
		}
		if err := tx.Create(&visit).Error; err != nil {
			return translateConflict(err)
		}

		note := in.Notes
		if note == "" {
			note = "Appointment booked"
		}
		return models.AppendVisitLog(tx, visit.ID, models.StatusScheduled, note, s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.loadVisit(visit.ID)
}

// RescheduleAppointment moves a SCHEDULED appointment to a new slot. Once the
// patient has checked in the appointment can no longer be moved.
func (s *Service) RescheduleAppointment(visitID uuid.UUID, newTime time.Time) (*models.Visit, error) {
	instant, err := s.validateFutureInstant(newTime)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		visit, err := lockVisit(tx, visitID)
		if err != nil {
			return err
		}
		if visit.VisitType != models.TypeScheduled {
			return fmt.Errorf("%w: only scheduled appointments can be rescheduled", apperrors.ErrInvalidState)
		}
		if visit.CurrentStatus.IsTerminal() {
			return fmt.Errorf("%w: cannot reschedule a %s appointment", apperrors.ErrInvalidState, visit.CurrentStatus)
		}
		if visit.CurrentStatus != models.StatusScheduled {
			return fmt.Errorf("%w: cannot reschedule - patient is already checked in", apperrors.ErrInvalidState)
		}
		if err := ensureSlotFree(tx, visit.DoctorID, instant, visit.ID); err != nil {
			return err
		}

		oldTime := "unset"
		if visit.ScheduledTime != nil {
			oldTime = visit.ScheduledTime.UTC().Format("2006-01-02 15:04")
		}
		if err := tx.Model(&visit).Update("scheduled_time", instant).Error; err != nil {
			return translateConflict(err)
		}

		note := fmt.Sprintf("Rescheduled from %s to %s", oldTime, instant.Format("2006-01-02 15:04"))
		return models.AppendVisitLog(tx, visit.ID, models.StatusScheduled, note, s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.loadVisit(visitID)
}

// CancelAppointment cancels a SCHEDULED appointment that has not reached a
// terminal status. The slot becomes bookable again for other patients.
func (s *Service) CancelAppointment(visitID uuid.UUID, reason string) (*models.Visit, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		visit, err := lockVisit(tx, visitID)
		if err != nil {
			return err
		}
		if visit.VisitType != models.TypeScheduled {
			return fmt.Errorf("%w: only scheduled appointments can be cancelled", apperrors.ErrInvalidState)
		}
		if visit.CurrentStatus.IsTerminal() {
			return fmt.Errorf("%w: appointment is already %s", apperrors.ErrInvalidState, visit.CurrentStatus)
		}

		if reason == "" {
			reason = "Appointment cancelled"
		}
		return visit.Transition(tx, models.StatusCancelled, reason, s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.loadVisit(visitID)
}

// CheckInAppointment moves a SCHEDULED appointment into the live queue.
func (s *Service) CheckInAppointment(visitID uuid.UUID) (*models.Visit, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		visit, err := lockVisit(tx, visitID)
		if err != nil {
			return err
		}
		if visit.VisitType != models.TypeScheduled {
			return fmt.Errorf("%w: only scheduled appointments can be checked in", apperrors.ErrInvalidState)
		}
		if visit.CurrentStatus != models.StatusScheduled {
			return fmt.Errorf("%w: cannot check in - appointment status is %s", apperrors.ErrInvalidState, visit.CurrentStatus)
		}
		// Entering the queue can trip the single-active-visit index when the
		// patient is already checked in through another visit.
		return translateConflict(visit.Transition(tx, models.StatusCheckedIn, "Patient checked in", s.now()))
	})
	if err != nil {
		return nil, err
	}
	return s.loadVisit(visitID)
}

// CreateWalkIn checks a patient straight into the queue without a slot. A
// patient already waiting or with a doctor cannot be queued a second time.
func (s *Service) CreateWalkIn(in WalkInInput) (*models.Visit, error) {
	if err := s.ensurePatientExists(in.PatientID); err != nil {
		return nil, err
	}
	if err := s.ensureDoctorBookable(in.DoctorID); err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	var visit models.Visit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var active models.Visit
		err := tx.Raw(`
			SELECT *
			FROM visits
			WHERE patient_id = ? AND current_status IN ('CHECKED_IN', 'WITH_DOCTOR')
			FOR UPDATE
			LIMIT 1
		`, in.PatientID).Scan(&active).Error
		if err != nil {
			return err
		}
		if active.ID != uuid.Nil {
			return fmt.Errorf("%w: patient is already in the queue or with a doctor", apperrors.ErrAlreadyActive)
		}

		now := s.now().UTC()
		visit = models.Visit{
			PatientID:     in.PatientID,
			DoctorID:      in.DoctorID,
			VisitType:     models.TypeWalkIn,
			Priority:      priority,
			CheckInTime:   &now,
			CurrentStatus: models.StatusCheckedIn,
		}
		if err := tx.Create(&visit).Error; err != nil {
			return translateConflict(err)
		}
		return models.AppendVisitLog(tx, visit.ID, models.StatusCheckedIn, "Walk-in checked in", now)
	})
	if err != nil {
		return nil, err
	}
	return s.loadVisit(visit.ID)
}

// AdvanceQueue moves an active visit forward: to WITH_DOCTOR or COMPLETED.
func (s *Service) AdvanceQueue(visitID uuid.UUID, newStatus models.VisitStatus) (*models.Visit, error) {
	if newStatus != models.StatusWithDoctor && newStatus != models.StatusCompleted {
		return nil, fmt.Errorf("%w: queue can only advance to WITH_DOCTOR or COMPLETED", apperrors.ErrInvalidInput)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		visit, err := lockVisit(tx, visitID)
		if err != nil {
			return err
		}
		return visit.Transition(tx, newStatus, "", s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.loadVisit(visitID)
}

// validateFutureInstant normalizes a requested slot to minute-precision UTC,
// the same granularity the slot generator emits. Anything not strictly in the
// future is InvalidInput.
func (s *Service) validateFutureInstant(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("%w: appointment time is required", apperrors.ErrInvalidInput)
	}
	instant := t.UTC().Truncate(time.Minute)
	if !instant.After(s.now()) {
		return time.Time{}, fmt.Errorf("%w: appointment time must be in the future", apperrors.ErrInvalidInput)
	}
	return instant, nil
}

func (s *Service) ensurePatientExists(patientID uuid.UUID) error {
	var patient models.Patient
	if err := s.db.Select("id").First(&patient, "id = ?", patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: patient not found", apperrors.ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *Service) ensureDoctorBookable(doctorID uuid.UUID) error {
	var doctor models.Doctor
	if err := s.db.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound)
		}
		return err
	}
	if !doctor.IsActive {
		return fmt.Errorf("%w: doctor is not available", apperrors.ErrInvalidState)
	}
	return nil
}

// lockVisit loads a visit FOR UPDATE so concurrent transitions on the same
// visit serialize.
func lockVisit(tx *gorm.DB, visitID uuid.UUID) (*models.Visit, error) {
	var visit models.Visit
	err := tx.Raw(`
		SELECT *
		FROM visits
		WHERE id = ?
		FOR UPDATE
	`, visitID).Scan(&visit).Error
	if err != nil {
		return nil, err
	}
	if visit.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: appointment not found", apperrors.ErrNotFound)
	}
	return &visit, nil
}

// ensureSlotFree locks any competing visit row for the doctor at the instant
// and fails with Conflict when one exists. excludeID skips the visit being
// rescheduled.
func ensureSlotFree(tx *gorm.DB, doctorID uuid.UUID, instant time.Time, excludeID uuid.UUID) error {
	var existing models.Visit
	err := tx.Raw(`
		SELECT *
		FROM visits
		WHERE doctor_id = ? AND scheduled_time = ?
		  AND current_status NOT IN ('CANCELLED', 'COMPLETED')
		  AND id <> ?
		FOR UPDATE
		LIMIT 1
	`, doctorID, instant, excludeID).Scan(&existing).Error
	if err != nil {
		return err
	}
	if existing.ID != uuid.Nil {
		return fmt.Errorf("%w: this time slot is already booked", apperrors.ErrConflict)
	}
	return nil
}

// translateConflict converts the unique-index violation raised by a losing
// concurrent writer into the matching error kind. This is the single seam
// between storage error codes and the API error model.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uniq_patient_active_visit" {
			return fmt.Errorf("%w: patient is already in the queue or with a doctor", apperrors.ErrAlreadyActive)
		}
		return fmt.Errorf("%w: this time slot is already booked", apperrors.ErrConflict)
	}
	return err
}

// loadVisit returns a visit with its patient, doctor and ordered log trail.
func (s *Service) loadVisit(visitID uuid.UUID) (*models.Visit, error) {
	var visit models.Visit
	err := s.db.
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Logs", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp asc") }).
		First(&visit, "id = ?", visitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: appointment not found", apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &visit, nil
}
