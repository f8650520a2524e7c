// Package response writes the service's JSON error bodies.
package response

import (
	"net/http"

	"github.com/GunarsK-portfolio/blog-service/internal/validation"
	"github.com/GunarsK-portfolio/blog-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details validation.Errors `json:"details,omitempty"`
}

// Label returns the error category reported for an HTTP status.
func Label(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "internal_error"
	}
}

// RespondError aborts the request with status and message.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: Label(status), Message: message})
}

// LogAndRespondError logs err with the request logger and responds with a
// message safe to show to clients.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	logger.FromContext(c).Error(message,
		zap.Error(err),
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
	)
	RespondError(c, status, message)
}

// RespondValidation aborts with 400 and the field errors of a failed bind.
func RespondValidation(c *gin.Context, err error) {
	details := validation.Translate(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:   Label(http.StatusBadRequest),
		Message: "request validation failed",
		Details: details,
	})
}
