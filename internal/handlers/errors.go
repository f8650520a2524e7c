package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GunarsK-portfolio/blog-service/internal/middleware"
	"github.com/GunarsK-portfolio/blog-service/internal/response"
	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/GunarsK-portfolio/blog-service/internal/validation"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP responses. Unknown
// errors are logged and reported as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		response.RespondValidation(c, fieldErrs)
	case errors.Is(err, service.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		response.RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		response.RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidRole):
		response.RespondError(c, http.StatusBadRequest, err.Error())
	default:
		response.LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
	}
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// actor returns the authenticated caller or aborts with 401.
func actor(c *gin.Context) (service.Actor, bool) {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "authentication required")
	}
	return a, ok
}
