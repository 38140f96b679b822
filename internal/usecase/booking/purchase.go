package booking

import (
	"context"
	"log"
	"time"

	"github.com/medonline/consultation-scheduler/internal/audit"
	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// PurchaseConsultations marks every upcoming appointment of a patient as
// paid. The updates are independent per record; a failed update is logged
// and the rest proceed. The returned total is the sum of the pre-update
// prices of the unpaid appointments.
type PurchaseConsultations struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewPurchaseConsultations(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *PurchaseConsultations {
	return &PurchaseConsultations{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

type PurchaseResult struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
}

func (uc *PurchaseConsultations) Execute(
	ctx context.Context,
	userID string,
) (PurchaseResult, error) {

	appointments, err := uc.repo.ListAppointments(ctx, userID)
	if err != nil {
		return PurchaseResult{}, err
	}

	var res PurchaseResult
	for _, ap := range appointments {
		if !upcoming(ap, uc.now()) {
			continue
		}

		if !ap.Paid {
			res.Total += ap.Price
		}

		if err := uc.repo.MarkPaid(ctx, userID, ap.AppointmentID); err != nil {
			log.Printf("failed to mark appointment %s paid: %v", ap.AppointmentID, err)
			continue
		}
		res.Updated++
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "consultations_purchased",
		Entity:   "appointment",
		Metadata: res,
	})

	return res, nil
}

// upcoming compares the appointment's calendar day, at midnight, against
// now. A consultation later today is already in the past by this rule; it
// mirrors the day-granularity cut the cart always used.
func upcoming(ap models.Appointment, now time.Time) bool {
	day, err := time.Parse(models.DateLayout, ap.Date)
	if err != nil {
		return false
	}
	return !day.Before(now)
}
