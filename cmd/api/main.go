// Package main is the entry point for the blog service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/GunarsK-portfolio/blog-service/docs"
	"github.com/GunarsK-portfolio/blog-service/internal/config"
	"github.com/GunarsK-portfolio/blog-service/internal/handlers"
	"github.com/GunarsK-portfolio/blog-service/internal/metrics"
	"github.com/GunarsK-portfolio/blog-service/internal/middleware"
	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
	"github.com/GunarsK-portfolio/blog-service/internal/routes"
	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/GunarsK-portfolio/blog-service/pkg/database"
	"github.com/GunarsK-portfolio/blog-service/pkg/logger"
	"github.com/GunarsK-portfolio/blog-service/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Blog Service API
// @version 1.0
// @description Blog backend with posts, comments, categories and role-based access
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	appLogger, err := logger.New(logger.ConfigFromEnv())
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer func() { _ = appLogger.Sync() }()
	zap.ReplaceGlobals(appLogger)

	if err := run(appLogger); err != nil {
		appLogger.Fatal("blog service stopped", zap.Error(err))
	}
}

func run(appLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Connect(database.Config{
		Driver:   cfg.DBDriver,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		TimeZone: "UTC",
		Path:     cfg.DBPath,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db, models.All()...); err != nil {
			return err
		}
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	revocations := repository.NewRevocationStore(redisClient)
	statsRepo, err := repository.NewStatsRepository(db)
	if err != nil {
		return err
	}

	// Initialize services
	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return err
	}
	authService := service.NewAuthService(userRepo, jwtService, revocations)

	// Initialize handlers
	m := metrics.New()
	cookies := handlers.NewCookieHelper(handlers.CookieConfig{
		Domain: cfg.CookieDomain,
		Secure: cfg.CookieSecure,
	})
	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, cookies, m),
		Posts:      handlers.NewPostHandler(service.NewPostService(postRepo), m),
		Comments:   handlers.NewCommentHandler(service.NewCommentService(commentRepo, postRepo), m),
		Categories: handlers.NewCategoryHandler(service.NewCategoryService(categoryRepo), m),
		Users:      handlers.NewUserHandler(service.NewUserService(userRepo, revocations), m),
		Stats:      handlers.NewStatsHandler(service.NewStatsService(statsRepo)),
		Health: handlers.NewHealthHandler(map[string]handlers.HealthCheck{
			"database": sqlDB.PingContext,
			"redis":    revocations.Ping,
		}),
	}

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, h, middleware.NewAuthMiddleware(authService), cfg, m, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("starting blog service", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("shutting down blog service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
