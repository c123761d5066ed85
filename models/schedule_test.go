package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOfWeekFor(t *testing.T) {
	// 2026-09-07 is a Monday.
	base := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	want := []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i, day := range want {
		assert.Equal(t, day, DayOfWeekFor(base.AddDate(0, 0, i)))
	}
}

func TestDayOfWeekForUsesUTC(t *testing.T) {
	// 23:30 Monday in UTC+2 is still Monday 21:30 UTC.
	east := time.FixedZone("east", 2*3600)
	assert.Equal(t, Monday, DayOfWeekFor(time.Date(2026, 9, 7, 23, 30, 0, 0, east)))
	// 01:00 Tuesday in UTC+2 is Monday 23:00 UTC.
	assert.Equal(t, Monday, DayOfWeekFor(time.Date(2026, 9, 8, 1, 0, 0, 0, east)))
}

func TestIsValidDay(t *testing.T) {
	for _, d := range []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday} {
		assert.True(t, IsValidDay(d))
	}
	assert.False(t, IsValidDay("FUNDAY"))
	assert.False(t, IsValidDay("monday"))
	assert.False(t, IsValidDay(""))
}

func TestScheduleOverlaps(t *testing.T) {
	w := func(day DayOfWeek, start, end int) DoctorSchedule {
		return DoctorSchedule{DayOfWeek: day, StartMinute: start, EndMinute: end}
	}

	tests := []struct {
		name string
		a, b DoctorSchedule
		want bool
	}{
		{"identical windows", w(Monday, 540, 660), w(Monday, 540, 660), true},
		{"partial overlap", w(Monday, 540, 660), w(Monday, 600, 720), true},
		{"containment", w(Monday, 540, 720), w(Monday, 600, 660), true},
		{"touching boundaries do not overlap", w(Monday, 540, 660), w(Monday, 660, 780), false},
		{"disjoint same day", w(Monday, 540, 660), w(Monday, 840, 1020), false},
		{"same minutes different days", w(Monday, 540, 660), w(Tuesday, 540, 660), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestScheduleAnchoring(t *testing.T) {
	s := DoctorSchedule{DayOfWeek: Monday, StartMinute: 9 * 60, EndMinute: 11 * 60}
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), s.StartOn(date))
	assert.Equal(t, time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC), s.EndOn(date))

	// A time-of-day on the input date must not shift the anchors.
	noon := date.Add(12 * time.Hour)
	assert.Equal(t, s.StartOn(date), s.StartOn(noon))
}
