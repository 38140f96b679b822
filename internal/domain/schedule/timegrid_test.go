package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medonline/consultation-scheduler/internal/models"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	require.Len(t, slots, 32)
	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "22:30", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		prev, err := models.ClockMinutes(slots[i-1])
		require.NoError(t, err)
		cur, err := models.ClockMinutes(slots[i])
		require.NoError(t, err)
		assert.Equal(t, SlotMinutes, cur-prev, "slots must step by 30 minutes")
	}
}

func TestWeekStartsOnMonday(t *testing.T) {
	cases := []struct {
		name   string
		anchor time.Time
		monday string
	}{
		{
			name:   "midweek",
			anchor: time.Date(2024, 2, 1, 15, 30, 0, 0, time.UTC), // Thursday
			monday: "2024-01-29",
		},
		{
			name:   "monday itself",
			anchor: time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
			monday: "2024-01-29",
		},
		{
			name:   "sunday belongs to the previous monday",
			anchor: time.Date(2024, 2, 4, 10, 0, 0, 0, time.UTC),
			monday: "2024-01-29",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			week := Week(c.anchor)

			require.Len(t, week, 7)
			assert.Equal(t, time.Monday, week[0].Weekday())
			assert.Equal(t, c.monday, DateString(week[0]))

			for i := 1; i < 7; i++ {
				assert.Equal(t,
					week[i-1].AddDate(0, 0, 1),
					week[i],
					"days must be consecutive",
				)
			}
		})
	}
}

func TestShiftWeek(t *testing.T) {
	week := Week(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	next := ShiftWeek(week, DirectionNext)
	assert.Equal(t, "2024-02-05", DateString(next[0]))

	prev := ShiftWeek(week, DirectionPrevious)
	assert.Equal(t, "2024-01-22", DateString(prev[0]))
}

func TestShiftWeekEmptyWindow(t *testing.T) {
	assert.Empty(t, ShiftWeek(nil, DirectionNext))
	assert.Empty(t, ShiftWeek([]time.Time{}, DirectionPrevious))
}

func TestVisibleSlots(t *testing.T) {
	all := TimeSlots()

	page := VisibleSlots(all, 7, 6)
	require.Len(t, page, 12)
	assert.Equal(t, "07:00", page[0])
	assert.Equal(t, "12:30", page[len(page)-1])

	page = VisibleSlots(all, 13, 6)
	require.Len(t, page, 12)
	assert.Equal(t, "13:00", page[0])

	// A page near the end of the grid truncates.
	page = VisibleSlots(all, 19, 6)
	assert.Equal(t, "19:00", page[0])
	assert.Equal(t, "22:30", page[len(page)-1])
	assert.Len(t, page, 8)
}

func TestVisibleSlotsClampsStartHour(t *testing.T) {
	all := TimeSlots()

	assert.Equal(t, "07:00", VisibleSlots(all, 3, 2)[0])
	assert.Equal(t, "22:00", VisibleSlots(all, 30, 2)[0])

	assert.Equal(t, 7, ClampStartHour(-1))
	assert.Equal(t, 22, ClampStartHour(23))
	assert.Equal(t, 15, ClampStartHour(15))
}
