package utils

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Rohitsah12/healthFirst/apperrors"
)

// The core works in UTC instants only. Everything timezone-related for
// display lives here and is called from the presentation layer, never from
// the scheduler.

var (
	clinicOnce sync.Once
	clinicLoc  *time.Location
)

// ClinicLocation is the timezone used to render times for the front desk,
// from CLINIC_TIMEZONE (IANA name). Falls back to UTC when unset or invalid.
func ClinicLocation() *time.Location {
	clinicOnce.Do(func() {
		name := os.Getenv("CLINIC_TIMEZONE")
		if name == "" {
			clinicLoc = time.UTC
			return
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			clinicLoc = time.UTC
			return
		}
		clinicLoc = loc
	})
	return clinicLoc
}

// ToClinicTime converts a UTC instant for display.
func ToClinicTime(t time.Time) time.Time {
	return t.In(ClinicLocation())
}

// FormatClinicTime renders an instant in the clinic timezone.
func FormatClinicTime(t time.Time) string {
	return ToClinicTime(t).Format("2006-01-02 15:04")
}

// ParseClockTime parses an "HH:MM" 24-hour clock string into minutes since
// midnight. This is the persisted representation of working-hour boundaries.
func ParseClockTime(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("%w: time must be in HH:MM format", apperrors.ErrInvalidInput)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date as a UTC midnight instant.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrInvalidInput)
	}
	return d.UTC(), nil
}

// DayBounds returns the half-open UTC range [00:00, 24:00) of a date.
func DayBounds(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
