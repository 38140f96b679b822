package schedule

import (
	"time"

	"github.com/medonline/consultation-scheduler/internal/models"
)

// ConflictInfo identifies an appointment that collides with a declared
// absence and must be cancelled on both the doctor's and the patient's side.
type ConflictInfo struct {
	AppointmentID string
	DoctorID      string
	PatientID     string
	Date          string
	Time          string
}

// AbsenceConflict scans the doctor's appointments for one scheduled on date.
// It is a pure predicate; cancelling the conflicting appointment is a
// separate, explicit step in the absence workflow.
func AbsenceConflict(appointments []models.Appointment, date string) (ConflictInfo, bool) {
	for _, ap := range appointments {
		if ap.Active() && ap.Date == date {
			return ConflictInfo{
				AppointmentID: ap.AppointmentID,
				DoctorID:      ap.DoctorID,
				PatientID:     ap.PatientID,
				Date:          ap.Date,
				Time:          ap.Time,
			}, true
		}
	}
	return ConflictInfo{}, false
}

// RequiredSlots converts a consultation length in minutes into the number of
// consecutive 30-minute grid slots it occupies.
func RequiredSlots(durationMin int) int {
	return (durationMin + SlotMinutes - 1) / SlotMinutes
}

// SlotSpan returns the run of required consecutive grid slots beginning at
// start. ok is false when start is off the grid or the run would pass its
// end.
func SlotSpan(slots []string, start string, required int) (span []string, ok bool) {
	idx := -1
	for i, s := range slots {
		if s == start {
			idx = i
			break
		}
	}
	if idx < 0 || idx+required > len(slots) {
		return nil, false
	}
	return slots[idx : idx+required], true
}

// HasLengthConflict reports whether a booking of durationMin minutes starting
// at (day, start) would spill onto any slot that is not available.
func (s Snapshot) HasLengthConflict(day time.Time, start string, durationMin int) bool {
	span, ok := SlotSpan(TimeSlots(), start, RequiredSlots(durationMin))
	if !ok {
		return true
	}
	for _, clock := range span {
		if !s.IsAvailable(day, clock) {
			return true
		}
	}
	return false
}
