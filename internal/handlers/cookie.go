package handlers

import (
	"net/http"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CookieConfig controls the attributes of the access token cookie.
type CookieConfig struct {
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// CookieHelper manages the authentication cookie.
type CookieHelper struct {
	config CookieConfig
}

// NewCookieHelper creates a new cookie helper with the given configuration.
func NewCookieHelper(config CookieConfig) *CookieHelper {
	if config.Path == "" {
		config.Path = "/"
	}
	if config.SameSite == 0 {
		config.SameSite = http.SameSiteLaxMode
	}
	return &CookieHelper{config: config}
}

// SetAccessToken stores the access token in an HttpOnly cookie that lives
// as long as the token.
func (h *CookieHelper) SetAccessToken(c *gin.Context, token string, expiry time.Duration) {
	h.setCookie(c, middleware.AccessTokenCookie, token, int(expiry.Seconds()))
}

// ClearAccessToken removes the authentication cookie.
func (h *CookieHelper) ClearAccessToken(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
}

func (h *CookieHelper) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(h.config.SameSite)
	c.SetCookie(
		name,
		value,
		maxAge,
		h.config.Path,
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly - always true for auth cookies
	)
}
