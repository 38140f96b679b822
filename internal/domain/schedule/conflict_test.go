package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medonline/consultation-scheduler/internal/models"
)

func TestAbsenceConflict(t *testing.T) {
	appointments := []models.Appointment{
		{
			AppointmentID: "ap-1",
			Date:          "2024-02-06",
			Time:          "09:00",
			DoctorID:      "doc",
			PatientID:     "pat",
			Status:        models.StatusScheduled,
		},
		{
			AppointmentID: "ap-2",
			Date:          "2024-02-07",
			Time:          "10:00",
			DoctorID:      "doc",
			PatientID:     "pat2",
			Status:        models.StatusCanceled,
		},
	}

	info, ok := AbsenceConflict(appointments, "2024-02-06")
	require.True(t, ok)
	assert.Equal(t, "ap-1", info.AppointmentID)
	assert.Equal(t, "pat", info.PatientID)
	assert.Equal(t, "doc", info.DoctorID)

	// A canceled appointment is not a conflict.
	_, ok = AbsenceConflict(appointments, "2024-02-07")
	assert.False(t, ok)

	_, ok = AbsenceConflict(appointments, "2024-02-08")
	assert.False(t, ok)
}

func TestRequiredSlots(t *testing.T) {
	cases := []struct {
		minutes int
		slots   int
	}{
		{30, 1},
		{60, 2},
		{90, 3},
		{45, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.slots, RequiredSlots(c.minutes), "minutes=%d", c.minutes)
	}
}

func TestSlotSpan(t *testing.T) {
	all := TimeSlots()

	span, ok := SlotSpan(all, "09:00", 3)
	require.True(t, ok)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, span)

	// Start not on the grid.
	_, ok = SlotSpan(all, "09:15", 1)
	assert.False(t, ok)

	// Run past the end of the day.
	_, ok = SlotSpan(all, "22:30", 2)
	assert.False(t, ok)
}

func TestHasLengthConflict(t *testing.T) {
	snap := Snapshot{
		Availability: []models.Availability{cyclicTuesdays()},
		OtherAppointments: []models.Appointment{{
			AppointmentID: "ap-next",
			Date:          "2024-02-06",
			Time:          "09:30",
			Status:        models.StatusScheduled,
		}},
	}

	// 30 minutes fit before the occupied 09:30 slot.
	assert.False(t, snap.HasLengthConflict(tuesday, "09:00", 30))

	// 90 minutes starting 09:00 would run through the booked 09:30 slot.
	assert.True(t, snap.HasLengthConflict(tuesday, "09:00", 90))

	// 90 minutes later in the window are fine.
	assert.False(t, snap.HasLengthConflict(tuesday, "10:00", 90))

	// A span leaving the declared window conflicts.
	assert.True(t, snap.HasLengthConflict(tuesday, "14:30", 60))
}
