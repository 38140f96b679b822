package availability

import (
	"context"

	"github.com/medonline/consultation-scheduler/internal/audit"
	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/httperr"
	"github.com/medonline/consultation-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAvailabilityInput struct {
	DoctorID string

	Type       string
	StartDate  string
	EndDate    string
	DaysOfWeek []string
	TimeSlots  []models.TimeSlot

	// One-time entries: the single bookable date.
	SpecificDate string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAvailability struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCreateAvailability(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CreateAvailability {
	return &CreateAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAvailability) Execute(
	ctx context.Context,
	in CreateAvailabilityInput,
) (*models.Availability, error) {

	av := models.Availability{
		Key:        uc.repo.NewID(),
		Type:       in.Type,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		DaysOfWeek: in.DaysOfWeek,
		TimeSlots:  in.TimeSlots,
	}

	// One-time windows collapse to a single date.
	if in.Type == models.AvailabilityOneTime {
		av.SpecificDate = in.SpecificDate
		av.StartDate = in.SpecificDate
		av.EndDate = in.SpecificDate
		av.DaysOfWeek = nil
	}

	if err := av.Validate(); err != nil {
		return nil, httperr.ErrBusiness("invalid_availability")
	}

	if err := uc.repo.SaveAvailability(ctx, in.DoctorID, av); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.DoctorID,
		Action:   "availability_added",
		Entity:   "availability",
		EntityID: av.Key,
	})

	return &av, nil
}
