// Package handlers contains HTTP request handlers for the blog service.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/metrics"
	"github.com/GunarsK-portfolio/blog-service/internal/middleware"
	"github.com/GunarsK-portfolio/blog-service/internal/response"
	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/GunarsK-portfolio/blog-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	cookies     *CookieHelper
	metrics     *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, cookies *CookieHelper, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		metrics:     m,
	}
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// Register godoc
// @Summary Register a user
// @Description Create a user account with the default "user" role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "New account"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.FromContext(c).Info("user registered", zap.Int64("user_id", user.ID))
	c.JSON(http.StatusCreated, RegisterResponse{Message: "user registered successfully", UserID: user.ID})
}

// Login godoc
// @Summary User login
// @Description Authenticate with email and password and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.metrics.RecordLogin(metrics.LoginInvalid)
		case errors.Is(err, service.ErrUserInactive):
			h.metrics.RecordLogin(metrics.LoginInactive)
		default:
			h.metrics.RecordLogin(metrics.LoginError)
		}
		respondServiceError(c, err)
		return
	}

	h.metrics.RecordLogin(metrics.LoginSuccess)
	h.cookies.SetAccessToken(c, result.AccessToken, time.Duration(result.ExpiresIn)*time.Second)
	c.JSON(http.StatusOK, result)
}

// Logout godoc
// @Summary User logout
// @Description Revoke the presented access token and clear the auth cookie
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		response.RespondError(c, http.StatusUnauthorized, "missing authentication token")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondServiceError(c, err)
		return
	}

	h.cookies.ClearAccessToken(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// TokenStatusResponse represents the token status response.
type TokenStatusResponse struct {
	Valid      bool  `json:"valid"`
	TTLSeconds int64 `json:"ttl_seconds"`
}

// TokenStatus godoc
// @Summary Check token status
// @Description Check if the presented token is valid and return its remaining TTL
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} TokenStatusResponse
// @Failure 401 {object} TokenStatusResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /token-status [get]
func (h *AuthHandler) TokenStatus(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, TokenStatusResponse{Valid: false, TTLSeconds: 0})
		return
	}

	ttl, err := h.authService.TokenStatus(c.Request.Context(), token)
	if err != nil && !errors.Is(err, service.ErrUnauthenticated) {
		response.LogAndRespondError(c, http.StatusServiceUnavailable, err, "token validation unavailable")
		return
	}
	if err != nil || ttl <= 0 {
		c.JSON(http.StatusUnauthorized, TokenStatusResponse{Valid: false, TTLSeconds: 0})
		return
	}

	c.JSON(http.StatusOK, TokenStatusResponse{
		Valid:      true,
		TTLSeconds: ttl,
	})
}
