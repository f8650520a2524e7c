package service

import (
	"context"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
)

// StatsWindow is the look-back period of posts_last_week.
const StatsWindow = 7 * 24 * time.Hour

type StatsService interface {
	Get(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo, now: time.Now}
}

func (s *statsService) Get(ctx context.Context) (*models.Stats, error) {
	return s.statsRepo.Counts(ctx, s.now().Add(-StatsWindow))
}
