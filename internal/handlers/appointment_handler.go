package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/httperr"
	"github.com/medonline/consultation-scheduler/internal/httpresp"
	"github.com/medonline/consultation-scheduler/internal/middleware"
	ucBooking "github.com/medonline/consultation-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC     *ucBooking.BookConsultation
	cancelUC   *ucBooking.CancelConsultation
	purchaseUC *ucBooking.PurchaseConsultations
	historyUC  *ucBooking.ConsultationHistory
}

func NewAppointmentHandler(
	bookUC *ucBooking.BookConsultation,
	cancelUC *ucBooking.CancelConsultation,
	purchaseUC *ucBooking.PurchaseConsultations,
	historyUC *ucBooking.ConsultationHistory,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:     bookUC,
		cancelUC:   cancelUC,
		purchaseUC: purchaseUC,
		historyUC:  historyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookConsultationRequest struct {
	DoctorID    string `json:"doctor_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Length      int    `json:"length" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

// ======================================================
// BOOK / CANCEL
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(string)

	var req BookConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookConsultationInput{
		DoctorID:    req.DoctorID,
		PatientID:   patientID,
		Date:        req.Date,
		Time:        req.Time,
		Length:      req.Length,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(string)
	appointmentID := c.Param("id")

	if err := h.cancelUC.Execute(c.Request.Context(), patientID, appointmentID); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": appointmentID})
}

// ======================================================
// HISTORY / CART
// ======================================================

func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	appointments, err := h.historyUC.Upcoming(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) ListPast(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	appointments, err := h.historyUC.Past(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Purchase(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	res, err := h.purchaseUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, res)
}
