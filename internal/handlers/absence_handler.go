package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/httperr"
	"github.com/medonline/consultation-scheduler/internal/httpresp"
	"github.com/medonline/consultation-scheduler/internal/middleware"
	ucAbsence "github.com/medonline/consultation-scheduler/internal/usecase/absence"
)

// ======================================================
// HANDLER
// ======================================================

type AbsenceHandler struct {
	repo     schedule.Repository
	addUC    *ucAbsence.AddAbsence
	deleteUC *ucAbsence.DeleteAbsence
}

func NewAbsenceHandler(
	repo schedule.Repository,
	addUC *ucAbsence.AddAbsence,
	deleteUC *ucAbsence.DeleteAbsence,
) *AbsenceHandler {
	return &AbsenceHandler{
		repo:     repo,
		addUC:    addUC,
		deleteUC: deleteUC,
	}
}

type CreateAbsenceRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *AbsenceHandler) List(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(string)

	absences, err := h.repo.ListAbsences(c.Request.Context(), doctorID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, absences)
}

func (h *AbsenceHandler) Create(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid absence payload.")
		return
	}

	ab, err := h.addUC.Execute(c.Request.Context(), doctorID, req.Date, req.Reason)
	if err != nil {
		// The collision case already cancelled the consultation on both
		// sides; tell the caller so, with 409 rather than a plain 400.
		if httperr.IsBusiness(err, ucAbsence.ErrConsultationsCancelled) {
			httperr.Conflict(
				c,
				ucAbsence.ErrConsultationsCancelled,
				"Conflicting consultations have been cancelled; the absence was not recorded.",
			)
			return
		}
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, ab)
}

func (h *AbsenceHandler) Delete(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(string)
	key := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), doctorID, key); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": key})
}
