package repository

import (
	"context"
	"fmt"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	ListVisibleByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	UpdateBody(ctx context.Context, id int64, body string) error
	SetVisible(ctx context.Context, id int64, visible bool) error
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListVisibleByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ? AND visible = ?", postID, true).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %d: %w", postID, err)
	}
	return comments, nil
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("Author").First(&comment, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find comment by id %d: %w", id, err)
	}
	return &comment, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit("Author").Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment on post %d: %w", comment.PostID, err)
	}
	return nil
}

func (r *commentRepository) UpdateBody(ctx context.Context, id int64, body string) error {
	return r.updateColumn(ctx, id, "body", body)
}

func (r *commentRepository) SetVisible(ctx context.Context, id int64, visible bool) error {
	return r.updateColumn(ctx, id, "visible", visible)
}

func (r *commentRepository) updateColumn(ctx context.Context, id int64, column string, value interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s of comment %d: %w", column, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update %s of comment %d: %w", column, id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete comment %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
