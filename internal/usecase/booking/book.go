package booking

import (
	"context"
	"time"

	"github.com/medonline/consultation-scheduler/internal/audit"
	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/httperr"
	"github.com/medonline/consultation-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookConsultationInput struct {
	DoctorID  string
	PatientID string

	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Length int    // minutes

	Type        string
	Description string
}

// PricePerSlot is the flat rate charged per occupied 30-minute slot.
const PricePerSlot = 100

// ======================================================
// USE CASE
// ======================================================

type BookConsultation struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewBookConsultation(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *BookConsultation {
	return &BookConsultation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookConsultation) Execute(
	ctx context.Context,
	in BookConsultationInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validation
	// --------------------------------------------------
	day, err := time.Parse(models.DateLayout, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !models.IsOnSlotBoundary(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if in.Length <= 0 || in.Length%models.SlotMin != 0 {
		return nil, httperr.ErrBusiness("invalid_length")
	}
	switch in.Type {
	case models.TypeRegular, models.TypeEmergency, models.TypeConsultation:
	default:
		return nil, httperr.ErrBusiness("invalid_type")
	}

	// --------------------------------------------------
	// 2. Doctor snapshot, patient's view
	// --------------------------------------------------
	snap, err := PatientSnapshot(ctx, uc.repo, in.DoctorID, in.PatientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Slot availability
	// --------------------------------------------------
	if !snap.IsAvailable(day, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 4. Consultation length vs following slots
	// --------------------------------------------------
	if snap.HasLengthConflict(day, in.Time, in.Length) {
		return nil, httperr.ErrBusiness("length_conflict")
	}

	// --------------------------------------------------
	// 5. Create the appointment, one copy per side
	// --------------------------------------------------
	ap := models.Appointment{
		AppointmentID: uc.repo.NewID(),
		Date:          in.Date,
		Time:          in.Time,
		DoctorID:      in.DoctorID,
		PatientID:     in.PatientID,
		Status:        models.StatusScheduled,
		Type:          in.Type,
		Description:   in.Description,
		Duration:      in.Length,
		Price:         schedule.RequiredSlots(in.Length) * PricePerSlot,
		Paid:          false,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.PatientID,
		Action:   "consultation_booked",
		Entity:   "appointment",
		EntityID: ap.AppointmentID,
	})

	return &ap, nil
}

// PatientSnapshot loads the doctor's scheduling state as seen by one
// patient: the patient's own appointments separated from every other
// patient's.
func PatientSnapshot(
	ctx context.Context,
	repo schedule.Repository,
	doctorID string,
	patientID string,
) (schedule.Snapshot, error) {

	appointments, err := repo.ListAppointments(ctx, doctorID)
	if err != nil {
		return schedule.Snapshot{}, err
	}

	var own, other []models.Appointment
	for _, ap := range appointments {
		if ap.PatientID == patientID {
			own = append(own, ap)
		} else {
			other = append(other, ap)
		}
	}

	absences, err := repo.ListAbsences(ctx, doctorID)
	if err != nil {
		return schedule.Snapshot{}, err
	}

	availability, err := repo.ListAvailability(ctx, doctorID)
	if err != nil {
		return schedule.Snapshot{}, err
	}

	return schedule.Snapshot{
		Appointments:      own,
		OtherAppointments: other,
		Absences:          absences,
		Availability:      availability,
	}, nil
}
