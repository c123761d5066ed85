package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rohitsah12/healthFirst/apperrors"
	"github.com/Rohitsah12/healthFirst/models"
	"github.com/Rohitsah12/healthFirst/utils"
)

// Service resolves availability and coordinates booking writes. All time
// handling is UTC at minute precision; presentation-timezone conversion
// happens at the API boundary only.
type Service struct {
	db  *gorm.DB
	cfg Config
	now func() time.Time
}

func NewService(db *gorm.DB, cfg Config) *Service {
	return &Service{db: db, cfg: cfg, now: time.Now}
}

// WorkingWindow describes one configured shift, clock times in UTC.
type WorkingWindow struct {
	DayOfWeek models.DayOfWeek `json:"day_of_week"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
}

// AvailabilityResult is the advisory read half of the booking contract. The
// authoritative conflict check happens again at write time inside
// BookAppointment; callers must treat these slots as a snapshot.
type AvailabilityResult struct {
	AvailableSlots []time.Time     `json:"available_slots"`
	WorkingHours   []WorkingWindow `json:"working_hours,omitempty"`
}

// GetAvailability returns the bookable slot instants for a doctor on a date.
// A weekday with no configured schedule yields an empty slot list, not an
// error. An unknown doctor is NotFound; an inactive one is InvalidState.
func (s *Service) GetAvailability(doctorID uuid.UUID, date time.Time) (*AvailabilityResult, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound)
		}
		return nil, err
	}
	if !doctor.IsActive {
		return nil, fmt.Errorf("%w: doctor is not available", apperrors.ErrInvalidState)
	}

	day := models.DayOfWeekFor(date)
	var windows []models.DoctorSchedule
	if err := s.db.
		Where("doctor_id = ? AND day_of_week = ?", doctorID, day).
		Order("start_minute asc").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return &AvailabilityResult{AvailableSlots: []time.Time{}}, nil
	}

	booked, err := s.bookedInstants(doctorID, date)
	if err != nil {
		return nil, err
	}
	cutoff := s.now().UTC().Add(s.cfg.BookingBuffer)

	result := &AvailabilityResult{AvailableSlots: []time.Time{}}
	for _, window := range windows {
		candidates := GenerateSlots(window, date, s.cfg.SlotDuration)
		result.AvailableSlots = append(result.AvailableSlots, filterSlots(candidates, booked, cutoff)...)
		result.WorkingHours = append(result.WorkingHours, WorkingWindow{
			DayOfWeek: day,
			StartTime: utils.FormatMinutes(window.StartMinute),
			EndTime:   utils.FormatMinutes(window.EndMinute),
		})
	}
	return result, nil
}

// bookedInstants collects the scheduled times of the doctor's non-cancelled,
// non-completed visits on the date, keyed at minute precision to match the
// generator's granularity exactly.
func (s *Service) bookedInstants(doctorID uuid.UUID, date time.Time) (map[int64]struct{}, error) {
	d := date.UTC()
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var times []time.Time
	err := s.db.Model(&models.Visit{}).
		Where("doctor_id = ? AND scheduled_time >= ? AND scheduled_time < ?", doctorID, dayStart, dayEnd).
		Where("current_status NOT IN ?", []models.VisitStatus{models.StatusCancelled, models.StatusCompleted}).
		Pluck("scheduled_time", &times).Error
	if err != nil {
		return nil, err
	}

	booked := make(map[int64]struct{}, len(times))
	for _, t := range times {
		booked[t.UTC().Truncate(time.Minute).Unix()] = struct{}{}
	}
	return booked, nil
}

// filterSlots keeps candidates that are unbooked and strictly past the
// now+buffer cutoff, preserving generation order.
func filterSlots(candidates []time.Time, booked map[int64]struct{}, cutoff time.Time) []time.Time {
	kept := make([]time.Time, 0, len(candidates))
	for _, slot := range candidates {
		if _, taken := booked[slot.Unix()]; taken {
			continue
		}
		if !slot.After(cutoff) {
			continue
		}
		kept = append(kept, slot)
	}
	return kept
}
