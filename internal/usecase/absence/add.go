package absence

import (
	"context"
	"time"

	"github.com/medonline/consultation-scheduler/internal/audit"
	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/httperr"
	"github.com/medonline/consultation-scheduler/internal/models"
)

// ErrConsultationsCancelled is returned when a declared absence collided
// with a scheduled consultation. The consultation has been cancelled on both
// sides; the absence itself was NOT recorded and has to be declared again.
const ErrConsultationsCancelled = "absence_conflict_consultations_cancelled"

// ======================================================
// USE CASE
// ======================================================

type AddAbsence struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewAddAbsence(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *AddAbsence {
	return &AddAbsence{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddAbsence) Execute(
	ctx context.Context,
	doctorID string,
	date string,
	reason string,
) (*models.Absence, error) {

	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 1. Detect a colliding consultation
	// --------------------------------------------------
	appointments, err := uc.repo.ListAppointments(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. On conflict: cancel the consultation on both
	//    sides and abort the absence
	// --------------------------------------------------
	if info, ok := schedule.AbsenceConflict(appointments, date); ok {
		if err := uc.cancelConflicting(ctx, info); err != nil {
			return nil, err
		}
		return nil, httperr.ErrBusiness(ErrConsultationsCancelled)
	}

	// --------------------------------------------------
	// 3. No conflict: record the absence
	// --------------------------------------------------
	ab := models.Absence{
		Key:    uc.repo.NewID(),
		Date:   date,
		Reason: reason,
	}

	if err := uc.repo.SaveAbsence(ctx, doctorID, ab); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   doctorID,
		Action:   "absence_added",
		Entity:   "absence",
		EntityID: ab.Key,
	})

	return &ab, nil
}

func (uc *AddAbsence) cancelConflicting(
	ctx context.Context,
	info schedule.ConflictInfo,
) error {

	if err := uc.repo.DeleteAppointment(
		ctx,
		info.DoctorID,
		info.PatientID,
		info.AppointmentID,
	); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   info.DoctorID,
		Action:   "consultation_cancelled_by_absence",
		Entity:   "appointment",
		EntityID: info.AppointmentID,
		Metadata: info,
	})
	return nil
}
