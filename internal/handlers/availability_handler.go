package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/httperr"
	"github.com/medonline/consultation-scheduler/internal/httpresp"
	"github.com/medonline/consultation-scheduler/internal/middleware"
	"github.com/medonline/consultation-scheduler/internal/models"
	ucAvailability "github.com/medonline/consultation-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	repo     schedule.Repository
	createUC *ucAvailability.CreateAvailability
	deleteUC *ucAvailability.DeleteAvailability
}

func NewAvailabilityHandler(
	repo schedule.Repository,
	createUC *ucAvailability.CreateAvailability,
	deleteUC *ucAvailability.DeleteAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		repo:     repo,
		createUC: createUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAvailabilityRequest struct {
	Type         string            `json:"type" binding:"required"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	DaysOfWeek   []string          `json:"days_of_week"`
	TimeSlots    []models.TimeSlot `json:"time_slots" binding:"required"`
	SpecificDate string            `json:"specific_date"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *AvailabilityHandler) List(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(string)

	entries, err := h.repo.ListAvailability(c.Request.Context(), doctorID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, entries)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}

	av, err := h.createUC.Execute(c.Request.Context(), ucAvailability.CreateAvailabilityInput{
		DoctorID:     doctorID,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DaysOfWeek:   req.DaysOfWeek,
		TimeSlots:    req.TimeSlots,
		SpecificDate: req.SpecificDate,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, av)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(string)
	key := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), doctorID, key); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": key})
}
