package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/middleware"
)

type MeHandler struct {
	repo schedule.Repository
}

func NewMeHandler(repo schedule.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	profile, err := h.repo.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": publicProfile(profile)})
}
