package schedule

import (
	"time"

	"github.com/medonline/consultation-scheduler/internal/models"
)

// Snapshot is the per-doctor state a calendar resolves slots against:
// the viewer's own appointments, other patients' appointments with the same
// doctor (empty for the doctor's own calendar), declared absences and
// availability entries.
type Snapshot struct {
	Appointments      []models.Appointment
	OtherAppointments []models.Appointment
	Absences          []models.Absence
	Availability      []models.Availability
}

// AppointmentAt returns the viewer's own active appointment occupying the
// exact (day, clock) slot, if any.
func (s Snapshot) AppointmentAt(day time.Time, clock string) (models.Appointment, bool) {
	date := DateString(day)
	for _, ap := range s.Appointments {
		if ap.Active() && ap.Date == date && ap.Time == clock {
			return ap, true
		}
	}
	return models.Appointment{}, false
}

// IsBooked reports whether any active appointment, on either side, occupies
// the exact slot.
func (s Snapshot) IsBooked(day time.Time, clock string) bool {
	if _, ok := s.AppointmentAt(day, clock); ok {
		return true
	}
	return s.occupiedByOther(day, clock)
}

// IsAbsent reports whether the doctor declared an absence on day.
func (s Snapshot) IsAbsent(day time.Time) bool {
	date := DateString(day)
	for _, ab := range s.Absences {
		if ab.Date == date {
			return true
		}
	}
	return false
}

// IsAvailable resolves whether the slot can be booked. Existing appointments
// win over everything, an absence wins over declared availability, and
// otherwise the first availability entry covering the slot decides.
func (s Snapshot) IsAvailable(day time.Time, clock string) bool {
	if s.IsBooked(day, clock) {
		return false
	}
	if s.IsAbsent(day) {
		return false
	}

	date := DateString(day)
	weekday := WeekdayName(day)

	for _, av := range s.Availability {
		switch av.Type {
		case models.AvailabilityCyclic:
			if containsDay(av.DaysOfWeek, weekday) && slotCovers(av.TimeSlots, clock) {
				return true
			}
		case models.AvailabilityOneTime:
			if av.StartDate == date && slotCovers(av.TimeSlots, clock) {
				return true
			}
		}
	}
	return false
}

// IsUnavailable is the patient-facing guard: not available, or occupied by
// another patient even when availability would still cover the slot. For a
// snapshot without OtherAppointments it reduces to the plain negation.
func (s Snapshot) IsUnavailable(day time.Time, clock string) bool {
	return !s.IsAvailable(day, clock) || s.occupiedByOther(day, clock)
}

// AppointmentCount returns how many of the viewer's active appointments fall
// on day.
func (s Snapshot) AppointmentCount(day time.Time) int {
	date := DateString(day)
	count := 0
	for _, ap := range s.Appointments {
		if ap.Active() && ap.Date == date {
			count++
		}
	}
	return count
}

func (s Snapshot) occupiedByOther(day time.Time, clock string) bool {
	date := DateString(day)
	for _, ap := range s.OtherAppointments {
		if ap.Active() && ap.Date == date && ap.Time == clock {
			return true
		}
	}
	return false
}

// slotCovers applies the half-open window test: startTime <= clock < endTime,
// compared as minutes since midnight.
func slotCovers(slots []models.TimeSlot, clock string) bool {
	t, err := models.ClockMinutes(clock)
	if err != nil {
		return false
	}
	for _, slot := range slots {
		start, err := models.ClockMinutes(slot.StartTime)
		if err != nil {
			continue
		}
		end, err := models.ClockMinutes(slot.EndTime)
		if err != nil {
			continue
		}
		if t >= start && t < end {
			return true
		}
	}
	return false
}

func containsDay(days []string, weekday string) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}
