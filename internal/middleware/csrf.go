// Package middleware provides HTTP middleware for the blog service.
package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/GunarsK-portfolio/blog-service/internal/response"
	"github.com/gin-gonic/gin"
)

// CSRFConfig holds configuration for CSRF protection middleware.
type CSRFConfig struct {
	// AllowedOrigins is a list of allowed origins for CSRF validation.
	// Should match CORS allowed origins.
	AllowedOrigins []string
}

// CSRF returns middleware that validates Origin/Referer headers of unsafe
// requests authenticated by the access token cookie. Requests carrying an
// Authorization header or no cookie at all are not exposed to CSRF and pass
// through.
func CSRF(config CSRFConfig) gin.HandlerFunc {
	allowedSet := make(map[string]bool)
	for _, origin := range config.AllowedOrigins {
		allowedSet[normalizeOrigin(origin)] = true
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}
		if !usesCookieAuth(c) {
			c.Next()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" {
			if !isAllowedOrigin(origin, allowedSet) {
				response.RespondError(c, http.StatusForbidden, "CSRF validation failed: invalid origin")
				return
			}
			c.Next()
			return
		}

		if referer := c.GetHeader("Referer"); referer != "" {
			if !isAllowedOrigin(extractOrigin(referer), allowedSet) {
				response.RespondError(c, http.StatusForbidden, "CSRF validation failed: invalid referer")
				return
			}
			c.Next()
			return
		}

		response.RespondError(c, http.StatusForbidden, "CSRF validation failed: missing origin")
	}
}

func usesCookieAuth(c *gin.Context) bool {
	if c.GetHeader("Authorization") != "" {
		return false
	}
	token, err := c.Cookie(AccessTokenCookie)
	return err == nil && token != ""
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}

// isAllowedOrigin checks if the given origin is in the allowed set.
func isAllowedOrigin(origin string, allowedSet map[string]bool) bool {
	if origin == "" || origin == "null" {
		return false
	}
	return allowedSet[normalizeOrigin(origin)]
}

// extractOrigin extracts the origin (scheme://host:port) from a URL.
func extractOrigin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}
