package handlers

import (
	"net/http"

	"github.com/GunarsK-portfolio/blog-service/internal/metrics"
	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/response"
	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/GunarsK-portfolio/blog-service/internal/validation"
	"github.com/GunarsK-portfolio/blog-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles user administration HTTP requests.
type UserHandler struct {
	users   service.UserService
	metrics *metrics.Metrics
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users service.UserService, m *metrics.Metrics) *UserHandler {
	return &UserHandler{users: users, metrics: m}
}

// List godoc
// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} UserView
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserViews(users))
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserView
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserView(user))
}

// Deactivate godoc
// @Summary Deactivate a user
// @Description Ends all sessions of the user. Admins cannot deactivate themselves.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserView
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Deactivate(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.Deactivate(c.Request.Context(), a, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	logger.FromContext(c).Info("user deactivated", zap.Int64("user_id", id), zap.Int64("by", a.UserID))
	h.metrics.RecordWrite("user", "deactivate")
	c.JSON(http.StatusOK, newUserView(user))
}

// UpdateRole godoc
// @Summary Change a user's role
// @Description Ends all sessions of the user. Admins cannot change their own role.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body service.UpdateRoleRequest true "Role"
// @Success 200 {object} UserView
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		response.RespondValidation(c, validation.Errors{{Field: "role", Message: "must be one of: user, moderator, admin"}})
		return
	}

	user, err := h.users.UpdateRole(c.Request.Context(), a, id, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	logger.FromContext(c).Info("user role changed",
		zap.Int64("user_id", id),
		zap.String("role", req.Role),
		zap.Int64("by", a.UserID),
	)
	h.metrics.RecordWrite("user", "role")
	c.JSON(http.StatusOK, newUserView(user))
}
