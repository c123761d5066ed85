package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohitsah12/healthFirst/models"
)

func bookedSet(slots ...time.Time) map[int64]struct{} {
	booked := make(map[int64]struct{}, len(slots))
	for _, s := range slots {
		booked[s.UTC().Truncate(time.Minute).Unix()] = struct{}{}
	}
	return booked
}

func TestFilterSlotsExcludesBooked(t *testing.T) {
	candidates := GenerateSlots(window(models.Monday, 9*60, 11*60), monday, 30*time.Minute)
	require.Len(t, candidates, 4)

	tenOClock := monday.Add(10 * time.Hour)
	got := filterSlots(candidates, bookedSet(tenOClock), monday)

	require.Len(t, got, 3)
	assert.NotContains(t, got, tenOClock)
	assert.Equal(t, "09:00", got[0].Format("15:04"))
	assert.Equal(t, "09:30", got[1].Format("15:04"))
	assert.Equal(t, "10:30", got[2].Format("15:04"))
}

func TestFilterSlotsAppliesBufferCutoff(t *testing.T) {
	candidates := GenerateSlots(window(models.Monday, 9*60, 11*60), monday, 30*time.Minute)

	// now = 09:20, buffer 15m: 09:00 and 09:30 are both inside the cutoff.
	cutoff := monday.Add(9*time.Hour + 20*time.Minute).Add(15 * time.Minute)
	got := filterSlots(candidates, bookedSet(), cutoff)

	require.Len(t, got, 2)
	assert.Equal(t, "10:00", got[0].Format("15:04"))
	assert.Equal(t, "10:30", got[1].Format("15:04"))
}

func TestFilterSlotsCutoffIsStrict(t *testing.T) {
	candidates := GenerateSlots(window(models.Monday, 9*60, 10*60), monday, 30*time.Minute)

	// A slot exactly at the cutoff is not bookable; it must be strictly after.
	cutoff := monday.Add(9 * time.Hour)
	got := filterSlots(candidates, bookedSet(), cutoff)

	require.Len(t, got, 1)
	assert.Equal(t, "09:30", got[0].Format("15:04"))
}

func TestFilterSlotsElapsedWindow(t *testing.T) {
	candidates := GenerateSlots(window(models.Monday, 9*60, 11*60), monday, 30*time.Minute)

	// The whole window is in the past: empty result, not an error.
	cutoff := monday.Add(18 * time.Hour)
	got := filterSlots(candidates, bookedSet(), cutoff)
	assert.Empty(t, got)
}

func TestFilterSlotsPreservesOrder(t *testing.T) {
	candidates := GenerateSlots(window(models.Monday, 9*60, 17*60), monday, 30*time.Minute)
	got := filterSlots(candidates, bookedSet(candidates[3], candidates[7]), monday)

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].After(got[i-1]), "slots must stay in ascending order")
	}
	assert.Len(t, got, len(candidates)-2)
}

func TestBookedInstantMatchingIsMinutePrecise(t *testing.T) {
	// A stored scheduledTime with stray seconds must still block its slot.
	slot := monday.Add(10 * time.Hour)
	withSeconds := slot.Add(42 * time.Second)

	candidates := GenerateSlots(window(models.Monday, 9*60, 11*60), monday, 30*time.Minute)
	got := filterSlots(candidates, bookedSet(withSeconds), monday)

	assert.NotContains(t, got, slot)
}
