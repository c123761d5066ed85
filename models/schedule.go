package models

import (
	"time"

	"github.com/google/uuid"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var weekdayToDay = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// DayOfWeekFor resolves the weekday of an instant in UTC.
func DayOfWeekFor(t time.Time) DayOfWeek {
	return weekdayToDay[t.UTC().Weekday()]
}

// IsValidDay reports whether d is one of the seven enumerated values.
func IsValidDay(d DayOfWeek) bool {
	for _, day := range weekdayToDay {
		if day == d {
			return true
		}
	}
	return false
}

// DoctorSchedule is one working window of a doctor on a weekday. Times are
// stored as minutes since midnight UTC; the core never reasons in local time.
// A doctor may have several non-overlapping windows on the same day.
type DoctorSchedule struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DoctorID    uuid.UUID `json:"doctor_id" gorm:"type:uuid;index:idx_schedule_doctor_day"`
	DayOfWeek   DayOfWeek `json:"day_of_week" gorm:"type:varchar(10);index:idx_schedule_doctor_day"`
	StartMinute int       `json:"start_minute"`
	EndMinute   int       `json:"end_minute"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StartOn anchors the window start on a calendar date, in UTC.
func (s DoctorSchedule) StartOn(date time.Time) time.Time {
	d := date.UTC()
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(s.StartMinute) * time.Minute)
}

// EndOn anchors the window end on a calendar date, in UTC.
func (s DoctorSchedule) EndOn(date time.Time) time.Time {
	d := date.UTC()
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(s.EndMinute) * time.Minute)
}

// Overlaps reports whether two windows on the same day share any time.
func (s DoctorSchedule) Overlaps(other DoctorSchedule) bool {
	if s.DayOfWeek != other.DayOfWeek {
		return false
	}
	return s.StartMinute < other.EndMinute && other.StartMinute < s.EndMinute
}
