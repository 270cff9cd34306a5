package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sortedsinghal/URE-HR/internal/errors"
)

func statusFor(t errors.ErrorType) int {
	switch t {
	case errors.ErrTypeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrTypeNotFound:
		return http.StatusNotFound
	case errors.ErrTypeConflict:
		return http.StatusConflict
	case errors.ErrTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Foreign
// errors become an opaque 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	c.Error(err)

	t := errors.TypeOf(err)
	message := "internal server error"
	if de, ok := err.(*errors.DomainError); ok && t != errors.ErrTypeInternal {
		message = de.Message
	}

	c.JSON(statusFor(t), gin.H{
		"error": message,
		"type":  string(t),
	})
}

func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondError(c, errors.InvalidInput("invalid request body", err))
		return false
	}
	return true
}
