package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "resource-manager-backend/internal/errors"
	"resource-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse is returned by operations that have nothing else to report
type MessageResponse struct {
	Message string `json:"message" example:"Project deleted successfully"`
}

// respondError maps a service error onto its HTTP status
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		entry := logger.WithContext(c.Request.Context()).WithError(err)
		var storageErr *apperrors.StorageError
		if errors.As(err, &storageErr) {
			entry = entry.WithField("op", storageErr.Op)
		}
		entry.Error("request failed")
	}
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseID reads a numeric path parameter, answering 400 when it is malformed
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param})
		return 0, false
	}
	return uint(id), true
}
