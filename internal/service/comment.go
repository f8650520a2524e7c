package service

import (
	"context"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
)

type CommentService interface {
	ListVisible(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, actor Actor, postID int64, req CommentRequest) (*models.Comment, error)
	Update(ctx context.Context, actor Actor, id int64, req CommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	// SetVisibility hides or restores a comment without deleting it.
	// Callers are expected to have passed the moderator role check.
	SetVisibility(ctx context.Context, id int64, visible bool) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	now         func() time.Time
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo, now: time.Now}
}

func (s *commentService) ensurePost(ctx context.Context, postID int64) error {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPostNotFound
	}
	return nil
}

func (s *commentService) ListVisible(ctx context.Context, postID int64) ([]models.Comment, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListVisibleByPost(ctx, postID)
}

func (s *commentService) Create(ctx context.Context, actor Actor, postID int64, req CommentRequest) (*models.Comment, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:      req.Body,
		Visible:   true,
		AuthorID:  actor.UserID,
		PostID:    postID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.get(ctx, comment.ID)
}

func (s *commentService) get(ctx context.Context, id int64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrCommentNotFound, nil)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, actor Actor, id int64, req CommentRequest) (*models.Comment, error) {
	comment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModerate(comment.AuthorID) {
		return nil, ErrNotCommentModerator
	}
	if err := s.commentRepo.UpdateBody(ctx, id, req.Body); err != nil {
		return nil, translate(err, ErrCommentNotFound, nil)
	}
	return s.get(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, actor Actor, id int64) error {
	comment, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModerate(comment.AuthorID) {
		return ErrNotCommentModerator
	}
	return translate(s.commentRepo.Delete(ctx, id), ErrCommentNotFound, nil)
}

func (s *commentService) SetVisibility(ctx context.Context, id int64, visible bool) (*models.Comment, error) {
	if err := s.commentRepo.SetVisible(ctx, id, visible); err != nil {
		return nil, translate(err, ErrCommentNotFound, nil)
	}
	return s.get(ctx, id)
}
