package calendar

import (
	"context"
	"time"

	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/models"
	"github.com/medonline/consultation-scheduler/internal/usecase/booking"
)

// ======================================================
// VIEW TYPES
// ======================================================

type SlotStatus string

const (
	SlotBooked      SlotStatus = "booked"
	SlotAbsent      SlotStatus = "absent"
	SlotAvailable   SlotStatus = "available"
	SlotUnavailable SlotStatus = "unavailable"
)

type SlotView struct {
	Time        string              `json:"time"`
	Status      SlotStatus          `json:"status"`
	Appointment *models.Appointment `json:"appointment,omitempty"`
}

type DayView struct {
	Date             string     `json:"date"`
	Weekday          string     `json:"weekday"`
	Absent           bool       `json:"absent"`
	AppointmentCount int        `json:"appointment_count"`
	Slots            []SlotView `json:"slots"`
}

type WeekView struct {
	Days []DayView `json:"days"`
}

// ======================================================
// INPUT
// ======================================================

type WeekInput struct {
	Anchor       time.Time
	Direction    schedule.Direction // optional: shift the anchor's week ±7 days
	StartHour    int
	HoursPerPage int
}

func (in WeekInput) week() []time.Time {
	week := schedule.Week(in.Anchor)
	if in.Direction == schedule.DirectionPrevious || in.Direction == schedule.DirectionNext {
		week = schedule.ShiftWeek(week, in.Direction)
	}
	return week
}

func (in WeekInput) visibleSlots() []string {
	return schedule.VisibleSlots(schedule.TimeSlots(), in.StartHour, in.HoursPerPage)
}

// ======================================================
// DOCTOR VIEW
// ======================================================

// GetDoctorWeek renders the doctor's own calendar: every slot of the
// visible page classified against the doctor's appointments, absences and
// declared availability.
type GetDoctorWeek struct {
	repo schedule.Repository
}

func NewGetDoctorWeek(repo schedule.Repository) *GetDoctorWeek {
	return &GetDoctorWeek{repo: repo}
}

func (uc *GetDoctorWeek) Execute(
	ctx context.Context,
	doctorID string,
	in WeekInput,
) (*WeekView, error) {

	appointments, err := uc.repo.ListAppointments(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	absences, err := uc.repo.ListAbsences(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	availability, err := uc.repo.ListAvailability(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	snap := schedule.Snapshot{
		Appointments: appointments,
		Absences:     absences,
		Availability: availability,
	}

	return buildWeek(snap, in), nil
}

// ======================================================
// PATIENT VIEW
// ======================================================

// GetPatientWeek renders a chosen doctor's calendar as one patient sees it:
// only the patient's own bookings show as booked, other patients' bookings
// render as plain unavailability.
type GetPatientWeek struct {
	repo schedule.Repository
}

func NewGetPatientWeek(repo schedule.Repository) *GetPatientWeek {
	return &GetPatientWeek{repo: repo}
}

func (uc *GetPatientWeek) Execute(
	ctx context.Context,
	doctorID string,
	patientID string,
	in WeekInput,
) (*WeekView, error) {

	snap, err := booking.PatientSnapshot(ctx, uc.repo, doctorID, patientID)
	if err != nil {
		return nil, err
	}
	return buildWeek(snap, in), nil
}

// ======================================================
// GRID ASSEMBLY
// ======================================================

func buildWeek(snap schedule.Snapshot, in WeekInput) *WeekView {
	slots := in.visibleSlots()

	view := &WeekView{Days: make([]DayView, 0, 7)}
	for _, day := range in.week() {
		dv := DayView{
			Date:             schedule.DateString(day),
			Weekday:          schedule.WeekdayName(day),
			Absent:           snap.IsAbsent(day),
			AppointmentCount: snap.AppointmentCount(day),
			Slots:            make([]SlotView, 0, len(slots)),
		}

		for _, clock := range slots {
			dv.Slots = append(dv.Slots, resolveSlot(snap, day, clock))
		}
		view.Days = append(view.Days, dv)
	}
	return view
}

func resolveSlot(snap schedule.Snapshot, day time.Time, clock string) SlotView {
	if ap, ok := snap.AppointmentAt(day, clock); ok {
		return SlotView{Time: clock, Status: SlotBooked, Appointment: &ap}
	}
	if snap.IsAbsent(day) {
		return SlotView{Time: clock, Status: SlotAbsent}
	}
	if snap.IsAvailable(day, clock) {
		return SlotView{Time: clock, Status: SlotAvailable}
	}
	return SlotView{Time: clock, Status: SlotUnavailable}
}
