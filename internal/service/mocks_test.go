package service

import (
	"context"
	"errors"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
)

// =============================================================================
// Mock PostRepository
// =============================================================================

type mockPostRepository struct {
	listPublishedFunc func(ctx context.Context) ([]models.Post, error)
	findByIDFunc      func(ctx context.Context, id int64) (*models.Post, error)
	existsFunc        func(ctx context.Context, id int64) (bool, error)
	createFunc        func(ctx context.Context, post *models.Post, sel repository.CategorySelection) error
	updateFunc        func(ctx context.Context, post *models.Post, sel *repository.CategorySelection) error
	deleteFunc        func(ctx context.Context, id int64) error
}

func (m *mockPostRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return false, errors.New("not implemented")
}

func (m *mockPostRepository) Create(ctx context.Context, post *models.Post, sel repository.CategorySelection) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post, sel)
	}
	return errors.New("not implemented")
}

func (m *mockPostRepository) Update(ctx context.Context, post *models.Post, sel *repository.CategorySelection) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, post, sel)
	}
	return errors.New("not implemented")
}

func (m *mockPostRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Mock CommentRepository
// =============================================================================

type mockCommentRepository struct {
	listVisibleByPostFunc func(ctx context.Context, postID int64) ([]models.Comment, error)
	findByIDFunc          func(ctx context.Context, id int64) (*models.Comment, error)
	createFunc            func(ctx context.Context, comment *models.Comment) error
	updateBodyFunc        func(ctx context.Context, id int64, body string) error
	setVisibleFunc        func(ctx context.Context, id int64, visible bool) error
	deleteFunc            func(ctx context.Context, id int64) error
}

func (m *mockCommentRepository) ListVisibleByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.listVisibleByPostFunc != nil {
		return m.listVisibleByPostFunc(ctx, postID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, comment)
	}
	return errors.New("not implemented")
}

func (m *mockCommentRepository) UpdateBody(ctx context.Context, id int64, body string) error {
	if m.updateBodyFunc != nil {
		return m.updateBodyFunc(ctx, id, body)
	}
	return errors.New("not implemented")
}

func (m *mockCommentRepository) SetVisible(ctx context.Context, id int64, visible bool) error {
	if m.setVisibleFunc != nil {
		return m.setVisibleFunc(ctx, id, visible)
	}
	return errors.New("not implemented")
}

func (m *mockCommentRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Mock CategoryRepository
// =============================================================================

type mockCategoryRepository struct {
	listFunc       func(ctx context.Context) ([]models.Category, error)
	findByIDFunc   func(ctx context.Context, id int64) (*models.Category, error)
	findByNameFunc func(ctx context.Context, name string) (*models.Category, error)
	createFunc     func(ctx context.Context, category *models.Category) error
	updateFunc     func(ctx context.Context, category *models.Category) error
	deleteFunc     func(ctx context.Context, id int64) error
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	if m.findByNameFunc != nil {
		return m.findByNameFunc(ctx, name)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, category)
	}
	return errors.New("not implemented")
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, category)
	}
	return errors.New("not implemented")
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Mock StatsRepository
// =============================================================================

type mockStatsRepository struct {
	countsFunc func(ctx context.Context, since time.Time) (*models.Stats, error)
}

func (m *mockStatsRepository) Counts(ctx context.Context, since time.Time) (*models.Stats, error) {
	if m.countsFunc != nil {
		return m.countsFunc(ctx, since)
	}
	return nil, errors.New("not implemented")
}
