package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/httperr"
	"github.com/medonline/consultation-scheduler/internal/httpresp"
	"github.com/medonline/consultation-scheduler/internal/middleware"
	"github.com/medonline/consultation-scheduler/internal/models"
	ucCalendar "github.com/medonline/consultation-scheduler/internal/usecase/calendar"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	doctorWeekUC  *ucCalendar.GetDoctorWeek
	patientWeekUC *ucCalendar.GetPatientWeek
}

func NewCalendarHandler(
	doctorWeekUC *ucCalendar.GetDoctorWeek,
	patientWeekUC *ucCalendar.GetPatientWeek,
) *CalendarHandler {
	return &CalendarHandler{
		doctorWeekUC:  doctorWeekUC,
		patientWeekUC: patientWeekUC,
	}
}

// ======================================================
// QUERY PARSING
// ======================================================

const defaultHoursPerPage = 6

// weekInput reads the shared calendar query params: an anchor date
// (default today), an optional previous/next shift, and the hour paging.
func weekInput(c *gin.Context) (ucCalendar.WeekInput, error) {
	in := ucCalendar.WeekInput{
		Anchor:       time.Now(),
		StartHour:    schedule.GridStartHour,
		HoursPerPage: defaultHoursPerPage,
	}

	if date := c.Query("date"); date != "" {
		anchor, err := time.Parse(models.DateLayout, date)
		if err != nil {
			return in, err
		}
		in.Anchor = anchor
	}

	switch c.Query("direction") {
	case string(schedule.DirectionPrevious):
		in.Direction = schedule.DirectionPrevious
	case string(schedule.DirectionNext):
		in.Direction = schedule.DirectionNext
	}

	if raw := c.Query("start_hour"); raw != "" {
		hour, err := strconv.Atoi(raw)
		if err != nil {
			return in, err
		}
		in.StartHour = hour
	}
	if raw := c.Query("hours_per_page"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return in, err
		}
		in.HoursPerPage = hours
	}
	return in, nil
}

// ======================================================
// ROUTES
// ======================================================

// DoctorWeek renders the authenticated doctor's own week grid.
func (h *CalendarHandler) DoctorWeek(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(string)

	in, err := weekInput(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_query", "Invalid calendar parameters.")
		return
	}

	view, err := h.doctorWeekUC.Execute(c.Request.Context(), doctorID, in)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, view)
}

// PatientWeek renders a chosen doctor's week grid from the authenticated
// patient's perspective.
func (h *CalendarHandler) PatientWeek(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(string)
	doctorID := c.Param("id")

	in, err := weekInput(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_query", "Invalid calendar parameters.")
		return
	}

	view, err := h.patientWeekUC.Execute(c.Request.Context(), doctorID, patientID, in)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, view)
}
