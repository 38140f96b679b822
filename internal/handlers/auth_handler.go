package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/medonline/consultation-scheduler/internal/config"
	"github.com/medonline/consultation-scheduler/internal/domain/schedule"
	"github.com/medonline/consultation-scheduler/internal/models"
	"github.com/medonline/consultation-scheduler/internal/store"
	"github.com/medonline/consultation-scheduler/internal/validators"
)

type AuthHandler struct {
	repo   schedule.Repository
	config *config.Config
}

func NewAuthHandler(repo schedule.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{repo: repo, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Surname        string `json:"surname" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Type           string `json:"type" binding:"required"`
	Specialization string `json:"specialization"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Type != models.RoleDoctor && req.Type != models.RolePatient {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_user_type"})
		return
	}
	if req.Type == models.RoleDoctor && req.Specialization == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_specialization"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	if _, err := h.repo.FindProfileByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	profile := models.Profile{
		UserID:         h.repo.NewID(),
		Type:           req.Type,
		Name:           req.Name,
		Surname:        req.Surname,
		Specialization: req.Specialization,
		Email:          email,
		PasswordHash:   string(hashed),
	}

	if err := h.repo.SaveProfile(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  publicProfile(profile),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := h.repo.FindProfileByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  publicProfile(profile),
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(p *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  p.UserID,
		"role": p.Type,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func publicProfile(p models.Profile) gin.H {
	return gin.H{
		"user_id":        p.UserID,
		"type":           p.Type,
		"name":           p.Name,
		"surname":        p.Surname,
		"specialization": p.Specialization,
		"email":          p.Email,
	}
}
