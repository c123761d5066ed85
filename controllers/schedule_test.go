package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohitsah12/healthFirst/apperrors"
	"github.com/Rohitsah12/healthFirst/models"
)

func entry(day models.DayOfWeek, start, end string) scheduleEntryRequest {
	return scheduleEntryRequest{DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestValidateScheduleEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []scheduleEntryRequest
		wantErr bool
	}{
		{
			name:    "single window",
			entries: []scheduleEntryRequest{entry(models.Monday, "09:00", "17:00")},
		},
		{
			name: "split shift same day",
			entries: []scheduleEntryRequest{
				entry(models.Monday, "09:00", "12:00"),
				entry(models.Monday, "14:00", "18:00"),
			},
		},
		{
			name: "back to back windows allowed",
			entries: []scheduleEntryRequest{
				entry(models.Monday, "09:00", "12:00"),
				entry(models.Monday, "12:00", "15:00"),
			},
		},
		{
			name: "same minutes on different days",
			entries: []scheduleEntryRequest{
				entry(models.Monday, "09:00", "17:00"),
				entry(models.Tuesday, "09:00", "17:00"),
			},
		},
		{
			name:    "empty request",
			entries: nil,
			wantErr: true,
		},
		{
			name:    "unknown weekday",
			entries: []scheduleEntryRequest{entry("FUNDAY", "09:00", "17:00")},
			wantErr: true,
		},
		{
			name:    "lowercase weekday",
			entries: []scheduleEntryRequest{entry("monday", "09:00", "17:00")},
			wantErr: true,
		},
		{
			name:    "malformed start time",
			entries: []scheduleEntryRequest{entry(models.Monday, "9am", "17:00")},
			wantErr: true,
		},
		{
			name:    "malformed end time",
			entries: []scheduleEntryRequest{entry(models.Monday, "09:00", "25:00")},
			wantErr: true,
		},
		{
			name:    "start equals end",
			entries: []scheduleEntryRequest{entry(models.Monday, "09:00", "09:00")},
			wantErr: true,
		},
		{
			name:    "midnight crossing window",
			entries: []scheduleEntryRequest{entry(models.Monday, "22:00", "02:00")},
			wantErr: true,
		},
		{
			name: "overlapping windows same day",
			entries: []scheduleEntryRequest{
				entry(models.Monday, "09:00", "12:00"),
				entry(models.Monday, "11:00", "15:00"),
			},
			wantErr: true,
		},
		{
			name: "contained window same day",
			entries: []scheduleEntryRequest{
				entry(models.Monday, "09:00", "17:00"),
				entry(models.Monday, "10:00", "11:00"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateScheduleEntries(tt.entries)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.entries))
		})
	}
}

func TestValidateScheduleEntriesParsesMinutes(t *testing.T) {
	got, err := validateScheduleEntries([]scheduleEntryRequest{
		entry(models.Wednesday, "09:30", "13:45"),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.Wednesday, got[0].DayOfWeek)
	assert.Equal(t, 9*60+30, got[0].StartMinute)
	assert.Equal(t, 13*60+45, got[0].EndMinute)
}
