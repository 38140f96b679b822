package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ===============================
// Appointment
// ===============================

const (
	StatusScheduled = "scheduled"
	StatusCanceled  = "canceled"
)

const (
	TypeRegular      = "regular"
	TypeEmergency    = "emergency"
	TypeConsultation = "consultation"
)

// Appointment is one logical consultation. It is persisted twice, under
// users/{doctorId}/appointments/{id} and users/{patientId}/appointments/{id};
// the booking and absence workflows keep the two copies in step.
type Appointment struct {
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM
	DoctorID      string `json:"doctor_id"`
	PatientID     string `json:"patient_id"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	Duration      int    `json:"duration"` // minutes
	Price         int    `json:"price"`
	Paid          bool   `json:"paid"`
}

// Active reports whether the appointment still occupies its slot.
func (a Appointment) Active() bool {
	return a.Status != StatusCanceled
}

func (a Appointment) Validate() error {
	if a.AppointmentID == "" {
		return fmt.Errorf("appointment: missing appointment_id")
	}
	if a.DoctorID == "" || a.PatientID == "" {
		return fmt.Errorf("appointment %s: missing doctor or patient id", a.AppointmentID)
	}
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return fmt.Errorf("appointment %s: invalid date %q", a.AppointmentID, a.Date)
	}
	if !IsOnSlotBoundary(a.Time) {
		return fmt.Errorf("appointment %s: invalid time %q", a.AppointmentID, a.Time)
	}
	if a.Status != StatusScheduled && a.Status != StatusCanceled {
		return fmt.Errorf("appointment %s: invalid status %q", a.AppointmentID, a.Status)
	}
	if a.Duration <= 0 || a.Duration%SlotMin != 0 {
		return fmt.Errorf("appointment %s: invalid duration %d", a.AppointmentID, a.Duration)
	}
	return nil
}

// ParseAppointment decodes and validates a raw store record. Malformed
// records are rejected at the boundary instead of flowing inward untyped.
func ParseAppointment(data json.RawMessage) (Appointment, error) {
	var a Appointment
	if err := json.Unmarshal(data, &a); err != nil {
		return Appointment{}, fmt.Errorf("appointment: %w", err)
	}
	if err := a.Validate(); err != nil {
		return Appointment{}, err
	}
	return a, nil
}
