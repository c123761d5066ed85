package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohitsah12/healthFirst/apperrors"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:30", 570, false},
		{"17:00", 1020, false},
		{"23:59", 1439, false},
		{"9:00", 540, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"0900", 0, true},
		{"", 0, true},
		{"nine", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMinutesRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 60, 540, 570, 1020, 1439} {
		formatted := FormatMinutes(minutes)
		parsed, err := ParseClockTime(formatted)
		require.NoError(t, err)
		assert.Equal(t, minutes, parsed)
	}
	assert.Equal(t, "09:05", FormatMinutes(545))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"07-09-2026", "2026/09/07", "2026-13-01", "today", ""} {
		_, err := ParseDate(bad)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput), "input %q", bad)
	}
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2026, 9, 7, 14, 23, 45, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
