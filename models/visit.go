package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rohitsah12/healthFirst/apperrors"
)

type VisitStatus string

const (
	StatusScheduled  VisitStatus = "SCHEDULED"
	StatusCheckedIn  VisitStatus = "CHECKED_IN"
	StatusWithDoctor VisitStatus = "WITH_DOCTOR"
	StatusCompleted  VisitStatus = "COMPLETED"
	StatusCancelled  VisitStatus = "CANCELLED"
)

type VisitType string

const (
	TypeWalkIn    VisitType = "WALK_IN"
	TypeScheduled VisitType = "SCHEDULED"
)

type PriorityLevel string

const (
	PriorityNormal PriorityLevel = "NORMAL"
	PriorityUrgent PriorityLevel = "URGENT"
)

// ActiveStatuses are the statuses that put a patient in the live queue. A
// patient may hold at most one visit in these statuses at any time.
var ActiveStatuses = []VisitStatus{StatusCheckedIn, StatusWithDoctor}

// Visit is a single patient encounter: either a walk-in that enters the queue
// immediately, or a scheduled appointment tied to a 30-minute slot.
type Visit struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	PatientID      uuid.UUID     `json:"patient_id" gorm:"type:uuid;index"`
	Patient        Patient       `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	DoctorID       uuid.UUID     `json:"doctor_id" gorm:"type:uuid;index"`
	Doctor         Doctor        `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	VisitType      VisitType     `json:"visit_type" gorm:"type:varchar(10)"`
	Priority       PriorityLevel `json:"priority" gorm:"type:varchar(10);default:'NORMAL'"`
	ScheduledTime  *time.Time    `json:"scheduled_time,omitempty" gorm:"index"`
	CheckInTime    *time.Time    `json:"check_in_time,omitempty"`
	WithDoctorTime *time.Time    `json:"with_doctor_time,omitempty"`
	CompleteTime   *time.Time    `json:"complete_time,omitempty"`
	CurrentStatus  VisitStatus   `json:"current_status" gorm:"type:varchar(15);index"`
	Logs           []VisitLog    `json:"logs,omitempty" gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// IsTerminal reports whether no transition may leave the status.
func (s VisitStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

var allowedTransitions = map[VisitStatus][]VisitStatus{
	StatusScheduled:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusWithDoctor, StatusCompleted, StatusCancelled},
	StatusWithDoctor: {StatusCompleted, StatusCancelled},
}

// CanTransition validates a status change against the lifecycle. It never
// mutates the visit; violations come back as ErrInvalidState.
func (v *Visit) CanTransition(to VisitStatus) error {
	if v.CurrentStatus.IsTerminal() {
		return fmt.Errorf("%w: no transitions allowed from %s", apperrors.ErrInvalidState, v.CurrentStatus)
	}
	for _, allowed := range allowedTransitions[v.CurrentStatus] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot move visit from %s to %s", apperrors.ErrInvalidState, v.CurrentStatus, to)
}

// applyStatus sets the new status and stamps the timestamp column that marks
// reaching it. Cancellation stamps nothing; the log row is its only trace.
func (v *Visit) applyStatus(newStatus VisitStatus, now time.Time) {
	switch newStatus {
	case StatusCheckedIn:
		v.CheckInTime = &now
	case StatusWithDoctor:
		v.WithDoctorTime = &now
	case StatusCompleted:
		v.CompleteTime = &now
	}
	v.CurrentStatus = newStatus
}

// Transition applies a guarded status change on the given transaction: it
// stamps the matching timestamp column, saves the row and appends one visit
// log entry at the caller's clock. Guard violations leave the visit untouched.
func (v *Visit) Transition(tx *gorm.DB, newStatus VisitStatus, note string, now time.Time) error {
	if err := v.CanTransition(newStatus); err != nil {
		return err
	}

	v.applyStatus(newStatus, now.UTC())

	if err := tx.Save(v).Error; err != nil {
		return err
	}
	return AppendVisitLog(tx, v.ID, newStatus, note, now.UTC())
}
