package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// StatsRepository computes content counts.
type StatsRepository interface {
	Counts(ctx context.Context, since time.Time) (*models.Stats, error)
}

type statsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository shares gorm's connection pool through sqlx so the
// aggregate runs as one plain SQL statement.
func NewStatsRepository(db *gorm.DB) (StatsRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return &statsRepository{db: sqlx.NewDb(sqlDB, db.Dialector.Name())}, nil
}

const countsQuery = `SELECT
	(SELECT COUNT(*) FROM posts WHERE published = ?) AS total_posts,
	(SELECT COUNT(*) FROM comments WHERE visible = ?) AS total_comments,
	(SELECT COUNT(*) FROM categories) AS total_categories,
	(SELECT COUNT(*) FROM posts WHERE created_at >= ?) AS posts_last_week`

func (r *statsRepository) Counts(ctx context.Context, since time.Time) (*models.Stats, error) {
	var stats models.Stats
	if err := r.db.GetContext(ctx, &stats, r.db.Rebind(countsQuery), true, true, since.UTC()); err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &stats, nil
}
