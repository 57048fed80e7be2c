package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-plan-api/internal/response"
)

// handleServiceError maps a service-layer error onto an HTTP status and
// error envelope. Unrecognized errors become opaque 500s; details stay in
// the logs, not the response.
func handleServiceError(c *gin.Context, err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Code {
		case response.ErrCodeValidation:
			status = http.StatusBadRequest
		case response.ErrCodeUnauthorized:
			status = http.StatusUnauthorized
		case response.ErrCodeForbidden:
			status = http.StatusForbidden
		case response.ErrCodeNotFound:
			status = http.StatusNotFound
		case response.ErrCodeAlreadyExists:
			status = http.StatusConflict
		case response.ErrCodeUpstreamAI, response.ErrCodeUpstreamContract:
			status = http.StatusBadGateway
		}
		response.SendError(c, status, appErr.Code, appErr.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// getUserID extracts the authenticated user id set by the auth middleware.
// A miss means the route was wired without auth, which is a server fault.
func getUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// parseUUIDParam parses a path parameter as a UUID, writing a 400 on
// failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
