package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/store"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Handle maps the error taxonomy onto HTTP responses: business validation
// failures come back as 400 with their code, a missing record as 404, and
// everything else (store failures, partial dual writes) as a generic 500.
// Store errors carry no structured detail to the caller.
func Handle(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		BadRequest(c, be.Code, "Request rejected.")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "not_found", "Record not found.")
		return
	}
	log.Println("store error:", err)
	Internal(c, "store_error", "Operation failed.")
}
