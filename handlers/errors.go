package handlers

import (
	"errors"
	"net/http"

	"careconnect/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps the booking error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an infrastructure failure.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr   *booking.ValidationError
		notFoundErr     *booking.NotFoundError
		forbiddenErr    *booking.ForbiddenError
		invalidStateErr *booking.InvalidStateError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, gin.H{"error": forbiddenErr.Message})
	case errors.As(err, &invalidStateErr):
		c.JSON(http.StatusConflict, gin.H{"error": invalidStateErr.Error(), "status": invalidStateErr.Current})
	default:
		zap.L().Error("unexpected service error", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	}
}
