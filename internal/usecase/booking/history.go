package booking

import (
	"context"
	"sort"
	"time"

	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/models"
)

// ConsultationHistory lists a user's appointments split into upcoming and
// past by calendar day.
type ConsultationHistory struct {
	repo schedule.Repository
	now  func() time.Time
}

func NewConsultationHistory(repo schedule.Repository) *ConsultationHistory {
	return &ConsultationHistory{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *ConsultationHistory) Upcoming(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {
	return uc.filter(ctx, userID, true)
}

func (uc *ConsultationHistory) Past(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {
	return uc.filter(ctx, userID, false)
}

func (uc *ConsultationHistory) filter(
	ctx context.Context,
	userID string,
	wantUpcoming bool,
) ([]models.Appointment, error) {

	appointments, err := uc.repo.ListAppointments(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if upcoming(ap, now) == wantUpcoming {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}
