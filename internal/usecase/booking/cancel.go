package booking

import (
	"context"

	"github.com/medonline/consultation-scheduler/internal/audit"
	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/httperr"
)

type CancelConsultation struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCancelConsultation(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CancelConsultation {
	return &CancelConsultation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelConsultation) Execute(
	ctx context.Context,
	patientID string,
	appointmentID string,
) error {

	appointments, err := uc.repo.ListAppointments(ctx, patientID)
	if err != nil {
		return err
	}

	for _, ap := range appointments {
		if ap.AppointmentID != appointmentID {
			continue
		}

		if err := uc.repo.DeleteAppointment(
			ctx,
			ap.DoctorID,
			ap.PatientID,
			ap.AppointmentID,
		); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   patientID,
			Action:   "consultation_cancelled",
			Entity:   "appointment",
			EntityID: appointmentID,
		})
		return nil
	}

	return httperr.ErrBusiness("appointment_not_found")
}
