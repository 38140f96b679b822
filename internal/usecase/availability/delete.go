package availability

import (
	"context"

	"github.com/medonline/consultation-scheduler/internal/audit"
	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
)

type DeleteAvailability struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewDeleteAvailability(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *DeleteAvailability {
	return &DeleteAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAvailability) Execute(
	ctx context.Context,
	doctorID string,
	key string,
) error {

	if err := uc.repo.DeleteAvailability(ctx, doctorID, key); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   doctorID,
		Action:   "availability_deleted",
		Entity:   "availability",
		EntityID: key,
	})
	return nil
}
