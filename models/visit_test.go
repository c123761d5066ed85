package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohitsah12/healthFirst/apperrors"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    VisitStatus
		to      VisitStatus
		allowed bool
	}{
		{"scheduled to checked in", StatusScheduled, StatusCheckedIn, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to with doctor skips check-in", StatusScheduled, StatusWithDoctor, false},
		{"scheduled to completed skips queue", StatusScheduled, StatusCompleted, false},

		{"checked in to with doctor", StatusCheckedIn, StatusWithDoctor, true},
		{"checked in to completed", StatusCheckedIn, StatusCompleted, true},
		{"checked in to cancelled", StatusCheckedIn, StatusCancelled, true},
		{"checked in back to scheduled", StatusCheckedIn, StatusScheduled, false},

		{"with doctor to completed", StatusWithDoctor, StatusCompleted, true},
		{"with doctor to cancelled", StatusWithDoctor, StatusCancelled, true},
		{"with doctor back to checked in", StatusWithDoctor, StatusCheckedIn, false},

		{"completed is terminal", StatusCompleted, StatusCheckedIn, false},
		{"completed cannot be cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusCheckedIn, false},
		{"cancelled cannot be completed", StatusCancelled, StatusCompleted, false},

		{"self transition rejected", StatusCheckedIn, StatusCheckedIn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Visit{CurrentStatus: tt.from}
			err := v.CanTransition(tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, apperrors.ErrInvalidState))
			}
			assert.Equal(t, tt.from, v.CurrentStatus, "guard must not mutate the visit")
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusScheduled.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
	assert.False(t, StatusWithDoctor.IsTerminal())
}

func TestActiveStatuses(t *testing.T) {
	assert.ElementsMatch(t, []VisitStatus{StatusCheckedIn, StatusWithDoctor}, ActiveStatuses)
}

func TestApplyStatusStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)

	t.Run("checked in", func(t *testing.T) {
		v := &Visit{CurrentStatus: StatusScheduled}
		v.applyStatus(StatusCheckedIn, now)
		require.NotNil(t, v.CheckInTime)
		assert.Equal(t, now, *v.CheckInTime)
		assert.Equal(t, StatusCheckedIn, v.CurrentStatus)
	})

	t.Run("with doctor", func(t *testing.T) {
		v := &Visit{CurrentStatus: StatusCheckedIn}
		v.applyStatus(StatusWithDoctor, now)
		require.NotNil(t, v.WithDoctorTime)
		assert.Equal(t, now, *v.WithDoctorTime)
	})

	t.Run("completed", func(t *testing.T) {
		v := &Visit{CurrentStatus: StatusWithDoctor}
		v.applyStatus(StatusCompleted, now)
		require.NotNil(t, v.CompleteTime)
		assert.Equal(t, now, *v.CompleteTime)
	})
}

func TestApplyStatusCancelledStampsNothing(t *testing.T) {
	// A cancelled visit was never completed; its only trace is the log row.
	now := time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)
	v := &Visit{CurrentStatus: StatusScheduled}
	v.applyStatus(StatusCancelled, now)

	assert.Equal(t, StatusCancelled, v.CurrentStatus)
	assert.Nil(t, v.CompleteTime)
	assert.Nil(t, v.CheckInTime)
	assert.Nil(t, v.WithDoctorTime)
}
