package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caatpension/pension-api/internal/domain"
	"github.com/caatpension/pension-api/pkg/logger"
)

// statusFor maps domain failures to transport status codes. Anything outside
// the closed set is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response for err. Domain failures carry their own
// message; unexpected errors are logged and redacted to a generic message.
func fail(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.Errorf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(code, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
