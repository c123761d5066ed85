package scheduler

import (
	"time"

	"github.com/Rohitsah12/healthFirst/models"
)

const (
	// DefaultSlotDuration is the length of a bookable appointment slot.
	DefaultSlotDuration = 30 * time.Minute
	// DefaultBookingBuffer is the minimum lead time between "now" and the
	// earliest bookable slot.
	DefaultBookingBuffer = 15 * time.Minute
)

// Config carries the scheduling policy knobs. They are injected rather than
// read from globals so tests can run with different durations.
type Config struct {
	SlotDuration  time.Duration
	BookingBuffer time.Duration
}

func DefaultConfig() Config {
	return Config{
		SlotDuration:  DefaultSlotDuration,
		BookingBuffer: DefaultBookingBuffer,
	}
}

// GenerateSlots enumerates the candidate slot start instants for one working
// window on the given calendar date. The sequence is ascending, starts at the
// window start and stops before any slot whose start reaches the window end.
// Windows are same-day; crossing midnight is rejected at input validation,
// never here. Pure: same inputs always yield the same slots.
func GenerateSlots(window models.DoctorSchedule, date time.Time, slotDuration time.Duration) []time.Time {
	cursor := window.StartOn(date)
	end := window.EndOn(date)

	var slots []time.Time
	for cursor.Before(end) {
		slots = append(slots, cursor)
		cursor = cursor.Add(slotDuration)
	}
	return slots
}
