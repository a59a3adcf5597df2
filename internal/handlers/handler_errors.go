package handlers

import (
	"errors"
	"net/http"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error to its HTTP status and writes the JSON
// body. ErrForbidden on record reads is rendered as 404 so out-of-scope
// callers cannot distinguish a record they may not see from one that does not
// exist; callers that need a real 403 handle ErrForbidden themselves before
// falling through here.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	case errors.Is(err, apperrors.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicatePeriod):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "a log already exists for this period"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrAlreadyIssued):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "resource already exists"})
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "verification link is invalid"})
	case errors.Is(err, apperrors.ErrTokenConsumed):
		c.JSON(http.StatusGone, ErrorResponse{Error: "verification link has already been used"})
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusGone, ErrorResponse{Error: "this log has already been decided"})
	case errors.Is(err, apperrors.ErrForbidden), errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
