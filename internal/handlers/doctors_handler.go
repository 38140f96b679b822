package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/httperr"
	"github.com/medonline/consultation-scheduler/internal/httpresp"
)

type DoctorsHandler struct {
	repo schedule.Repository
}

func NewDoctorsHandler(repo schedule.Repository) *DoctorsHandler {
	return &DoctorsHandler{repo: repo}
}

func (h *DoctorsHandler) List(c *gin.Context) {
	doctors, err := h.repo.ListDoctors(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	out := make([]gin.H, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, publicProfile(d))
	}
	httpresp.List(c, out)
}

// Delete removes a doctor and every record under their subtree. Admin only;
// the route group enforces the role.
func (h *DoctorsHandler) Delete(c *gin.Context) {
	doctorID := c.Param("id")

	profile, err := h.repo.GetProfile(c.Request.Context(), doctorID)
	if err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	if err := h.repo.DeleteUser(c.Request.Context(), profile.UserID); err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": doctorID})
}
