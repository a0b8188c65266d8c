package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/apperrors"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondError maps a service error to an HTTP response. Internal failures
// are logged with full detail and surface only a generic message.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(apperrors.KindInternal, "internal server error", err)
	}

	switch appErr.Kind {
	case apperrors.KindValidation, apperrors.KindConflict:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
	case apperrors.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: appErr.Message})
	case apperrors.KindForbidden:
		c.JSON(http.StatusForbidden, ErrorResponse{Error: appErr.Message})
	case apperrors.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: appErr.Message})
	default:
		log.Printf("Internal error (%s %s): %v", c.Request.Method, c.Request.URL.Path, appErr)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 error and returns false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
