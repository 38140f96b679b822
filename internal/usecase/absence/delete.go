package absence

import (
	"context"

	"github.com/medonline/consultation-scheduler/internal/audit"
	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
)

type DeleteAbsence struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewDeleteAbsence(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *DeleteAbsence {
	return &DeleteAbsence{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes one absence record. Deleting an absence has no cascading
// effect on appointments.
func (uc *DeleteAbsence) Execute(
	ctx context.Context,
	doctorID string,
	key string,
) error {

	if err := uc.repo.DeleteAbsence(ctx, doctorID, key); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   doctorID,
		Action:   "absence_deleted",
		Entity:   "absence",
		EntityID: key,
	})
	return nil
}
