package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/response"
	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the HttpOnly cookie carrying the access token.
const AccessTokenCookie = "access_token"

const claimsKey = "claims"

// TokenValidator validates a raw access token.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*service.Claims, error)
}

// AuthMiddleware gates routes on a valid token and the claims it carries.
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// ExtractToken returns the bearer token of the request, falling back to the
// access token cookie.
func ExtractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	token, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// Authenticate rejects requests without a valid token and stores the
// claims for later handlers.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			response.RespondError(c, http.StatusUnauthorized, "missing authentication token")
			return
		}

		claims, err := m.validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				response.RespondError(c, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			response.LogAndRespondError(c, http.StatusServiceUnavailable, err, "token validation unavailable")
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireRoles allows only callers whose role is one of roles.
func (m *AuthMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			response.RespondError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		if !claims.Role.In(roles...) {
			response.RespondError(c, http.StatusForbidden, "insufficient role")
			return
		}
		c.Next()
	}
}

// RequireActive rejects callers whose account is deactivated.
func (m *AuthMiddleware) RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			response.RespondError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		if !claims.Active {
			response.RespondError(c, http.StatusForbidden, "user account is deactivated")
			return
		}
		c.Next()
	}
}

// SetClaims stores validated claims on the request context.
func SetClaims(c *gin.Context, claims *service.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(c *gin.Context) (*service.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok && claims != nil
}

// ActorFromContext returns the authenticated caller.
func ActorFromContext(c *gin.Context) (service.Actor, bool) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return service.Actor{}, false
	}
	return service.ActorFromClaims(claims), true
}
