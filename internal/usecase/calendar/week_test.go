package calendar

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/infra/records"
	"github.com/medonline/consultation-scheduler/internal/models"
	"github.com/medonline/consultation-scheduler/internal/store"
)

func newTestRepo(t *testing.T) *records.RecordsRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return records.NewRecordsRepository(store.NewRedisStoreWithClient(client))
}

// seedDoctor: cyclic Tuesday 09:00-11:00, an appointment with pat-1 at
// Tuesday 09:00 and an absence on Wednesday.
func seedDoctor(t *testing.T, repo *records.RecordsRepository) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repo.SaveAvailability(ctx, "doc-1", models.Availability{
		Key:        "av-1",
		Type:       models.AvailabilityCyclic,
		DaysOfWeek: []string{"Tuesday"},
		TimeSlots:  []models.TimeSlot{{StartTime: "09:00", EndTime: "11:00"}},
	}))
	require.NoError(t, repo.CreateAppointment(ctx, models.Appointment{
		AppointmentID: "ap-1",
		Date:          "2024-02-06",
		Time:          "09:00",
		DoctorID:      "doc-1",
		PatientID:     "pat-1",
		Status:        models.StatusScheduled,
		Type:          models.TypeRegular,
		Duration:      30,
		Price:         100,
	}))
	require.NoError(t, repo.SaveAbsence(ctx, "doc-1", models.Absence{
		Key:  "ab-1",
		Date: "2024-02-07",
	}))
}

func slotAt(t *testing.T, view *WeekView, date, clock string) SlotView {
	t.Helper()
	for _, day := range view.Days {
		if day.Date != date {
			continue
		}
		for _, s := range day.Slots {
			if s.Time == clock {
				return s
			}
		}
	}
	t.Fatalf("slot %s %s not in view", date, clock)
	return SlotView{}
}

func weekInput() WeekInput {
	return WeekInput{
		Anchor:       time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC),
		StartHour:    7,
		HoursPerPage: 6, // 07:00 through 12:30
	}
}

func TestGetDoctorWeek(t *testing.T) {
	repo := newTestRepo(t)
	seedDoctor(t, repo)
	uc := NewGetDoctorWeek(repo)

	view, err := uc.Execute(context.Background(), "doc-1", weekInput())
	require.NoError(t, err)

	require.Len(t, view.Days, 7)
	assert.Equal(t, "2024-02-05", view.Days[0].Date) // Monday starts the week
	assert.Equal(t, "Monday", view.Days[0].Weekday)
	assert.Len(t, view.Days[0].Slots, 12)

	booked := slotAt(t, view, "2024-02-06", "09:00")
	assert.Equal(t, SlotBooked, booked.Status)
	require.NotNil(t, booked.Appointment)
	assert.Equal(t, "ap-1", booked.Appointment.AppointmentID)

	assert.Equal(t, SlotAvailable, slotAt(t, view, "2024-02-06", "09:30").Status)
	assert.Equal(t, SlotAvailable, slotAt(t, view, "2024-02-06", "10:30").Status)
	assert.Equal(t, SlotUnavailable, slotAt(t, view, "2024-02-06", "11:00").Status)
	assert.Equal(t, SlotUnavailable, slotAt(t, view, "2024-02-05", "09:00").Status)

	tuesday := view.Days[1]
	assert.Equal(t, 1, tuesday.AppointmentCount)
	assert.False(t, tuesday.Absent)

	wednesday := view.Days[2]
	assert.True(t, wednesday.Absent)
	assert.Equal(t, SlotAbsent, slotAt(t, view, "2024-02-07", "09:00").Status)
}

func TestGetPatientWeek(t *testing.T) {
	repo := newTestRepo(t)
	seedDoctor(t, repo)
	uc := NewGetPatientWeek(repo)
	ctx := context.Background()

	// pat-1 sees their own booking.
	own, err := uc.Execute(ctx, "doc-1", "pat-1", weekInput())
	require.NoError(t, err)
	assert.Equal(t, SlotBooked, slotAt(t, own, "2024-02-06", "09:00").Status)

	// pat-2 sees the same slot as plain unavailability, with no
	// appointment details leaking through.
	other, err := uc.Execute(ctx, "doc-1", "pat-2", weekInput())
	require.NoError(t, err)
	s := slotAt(t, other, "2024-02-06", "09:00")
	assert.Equal(t, SlotUnavailable, s.Status)
	assert.Nil(t, s.Appointment)
}

func TestWeekInputDirection(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewGetDoctorWeek(repo)
	ctx := context.Background()

	in := weekInput()
	in.Direction = schedule.DirectionNext
	view, err := uc.Execute(ctx, "doc-1", in)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-12", view.Days[0].Date)

	in.Direction = schedule.DirectionPrevious
	view, err = uc.Execute(ctx, "doc-1", in)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-29", view.Days[0].Date)
}
