// Package routes defines HTTP routes for the blog service.
package routes

import (
	"github.com/GunarsK-portfolio/blog-service/docs"
	"github.com/GunarsK-portfolio/blog-service/internal/config"
	"github.com/GunarsK-portfolio/blog-service/internal/handlers"
	"github.com/GunarsK-portfolio/blog-service/internal/metrics"
	"github.com/GunarsK-portfolio/blog-service/internal/middleware"
	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Posts      *handlers.PostHandler
	Comments   *handlers.CommentHandler
	Categories *handlers.CategoryHandler
	Users      *handlers.UserHandler
	Stats      *handlers.StatsHandler
	Health     *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, auth *middleware.AuthMiddleware, cfg *config.Config, m *metrics.Metrics, log *zap.Logger) {
	router.Use(
		middleware.RequestLogger(log),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.AllowedOrigins),
		m.Middleware(),
		middleware.CSRF(middleware.CSRFConfig{AllowedOrigins: cfg.AllowedOrigins}),
	)

	// Health check
	router.GET("/health", h.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := router.Group("/api")
	{
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)
		api.GET("/token-status", h.Auth.TokenStatus)

		api.GET("/posts", h.Posts.List)
		api.GET("/posts/:id", h.Posts.Get)
		api.GET("/posts/:id/comments", h.Comments.ListByPost)
		api.GET("/categories", h.Categories.List)
	}

	authed := api.Group("", auth.Authenticate())
	authed.POST("/logout", h.Auth.Logout)

	active := authed.Group("", auth.RequireRoles(models.AllRoles...), auth.RequireActive())
	{
		active.POST("/posts", h.Posts.Create)
		active.PUT("/posts/:id", h.Posts.Update)
		active.DELETE("/posts/:id", h.Posts.Delete)

		active.POST("/posts/:id/comments", h.Comments.Create)
		active.PUT("/comments/:id", h.Comments.Update)
		active.DELETE("/comments/:id", h.Comments.Delete)
	}

	moderators := active.Group("", auth.RequireRoles(models.RoleModerator, models.RoleAdmin))
	{
		moderators.PATCH("/comments/:id/visibility", h.Comments.SetVisibility)
		moderators.POST("/categories", h.Categories.Create)
		moderators.PUT("/categories/:id", h.Categories.Update)
		moderators.GET("/stats", h.Stats.Get)
	}

	admins := active.Group("", auth.RequireRoles(models.RoleAdmin))
	{
		admins.DELETE("/categories/:id", h.Categories.Delete)

		admins.GET("/users", h.Users.List)
		admins.GET("/users/:id", h.Users.Get)
		admins.DELETE("/users/:id", h.Users.Deactivate)
		admins.PATCH("/users/:id/role", h.Users.UpdateRole)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
