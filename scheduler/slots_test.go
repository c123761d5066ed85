package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohitsah12/healthFirst/models"
)

func window(day models.DayOfWeek, startMin, endMin int) models.DoctorSchedule {
	return models.DoctorSchedule{DayOfWeek: day, StartMinute: startMin, EndMinute: endMin}
}

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		window   models.DoctorSchedule
		duration time.Duration
		want     []string
	}{
		{
			name:     "two hour morning window",
			window:   window(models.Monday, 9*60, 11*60),
			duration: 30 * time.Minute,
			want:     []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:     "window not divisible by slot length",
			window:   window(models.Monday, 9*60, 10*60+45),
			duration: 30 * time.Minute,
			want:     []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:     "single slot window",
			window:   window(models.Monday, 9*60, 9*60+30),
			duration: 30 * time.Minute,
			want:     []string{"09:00"},
		},
		{
			name:     "window shorter than a slot still yields the start",
			window:   window(models.Monday, 9*60, 9*60+10),
			duration: 30 * time.Minute,
			want:     []string{"09:00"},
		},
		{
			name:     "custom slot duration",
			window:   window(models.Monday, 9*60, 10*60),
			duration: 20 * time.Minute,
			want:     []string{"09:00", "09:20", "09:40"},
		},
		{
			name:     "empty window",
			window:   window(models.Monday, 9*60, 9*60),
			duration: 30 * time.Minute,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.window, monday, tt.duration)
			require.Len(t, got, len(tt.want))
			for i, slot := range got {
				assert.Equal(t, tt.want[i], slot.Format("15:04"))
				assert.Equal(t, time.UTC, slot.Location())
				assert.Equal(t, monday.Day(), slot.Day())
			}
		})
	}
}

func TestGenerateSlotsSpacing(t *testing.T) {
	slots := GenerateSlots(window(models.Monday, 8*60, 17*60), monday, 30*time.Minute)
	require.Len(t, slots, 18)
	assert.Equal(t, "08:00", slots[0].Format("15:04"))
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 30*time.Minute, slots[i].Sub(slots[i-1]))
	}
}

func TestGenerateSlotsIsPure(t *testing.T) {
	w := window(models.Friday, 13*60, 15*60)
	first := GenerateSlots(w, monday, 30*time.Minute)
	second := GenerateSlots(w, monday, 30*time.Minute)
	assert.Equal(t, first, second)
}

func TestGenerateSlotsIgnoresDateTimeComponent(t *testing.T) {
	// Callers pass calendar dates; a stray time-of-day must not shift slots.
	noon := monday.Add(12*time.Hour + 17*time.Minute)
	assert.Equal(t,
		GenerateSlots(window(models.Monday, 9*60, 11*60), monday, 30*time.Minute),
		GenerateSlots(window(models.Monday, 9*60, 11*60), noon, 30*time.Minute),
	)
}
