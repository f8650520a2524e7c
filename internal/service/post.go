package service

import (
	"context"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
)

type PostService interface {
	ListPublished(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, actor Actor, req CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, actor Actor, id int64, req UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}

type postService struct {
	postRepo repository.PostRepository
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo, now: time.Now}
}

func (s *postService) ListPublished(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListPublished(ctx)
}

func (s *postService) Get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrPostNotFound, nil)
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, actor Actor, req CreatePostRequest) (*models.Post, error) {
	newName, err := newCategoryName(req.NewCategory)
	if err != nil {
		return nil, err
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	now := s.now().UTC()
	post := &models.Post{
		Title:     req.Title,
		Body:      req.Body,
		Published: published,
		AuthorID:  actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	sel := repository.CategorySelection{
		IDs:     req.CategoryIDs,
		NewName: newName,
		Replace: true,
	}
	if err := s.postRepo.Create(ctx, post, sel); err != nil {
		return nil, translate(err, nil, ErrCategoryExists)
	}
	return s.Get(ctx, post.ID)
}

func (s *postService) Update(ctx context.Context, actor Actor, id int64, req UpdatePostRequest) (*models.Post, error) {
	change, err := categoryChange(req)
	if err != nil {
		return nil, err
	}

	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(post.AuthorID) {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	post.UpdatedAt = s.now().UTC()

	if err := s.postRepo.Update(ctx, post, change); err != nil {
		return nil, translate(err, ErrPostNotFound, ErrCategoryExists)
	}
	return s.Get(ctx, id)
}

// categoryChange derives the category edit of a partial update. Present ids
// replace the set; a lone new name is added to it.
func categoryChange(req UpdatePostRequest) (*repository.CategorySelection, error) {
	name, err := newCategoryName(req.NewCategory)
	if err != nil {
		return nil, err
	}
	switch {
	case req.CategoryIDs != nil:
		return &repository.CategorySelection{IDs: *req.CategoryIDs, NewName: name, Replace: true}, nil
	case name != "":
		return &repository.CategorySelection{NewName: name}, nil
	default:
		return nil, nil
	}
}

func (s *postService) Delete(ctx context.Context, actor Actor, id int64) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(post.AuthorID) {
		return ErrNotOwner
	}
	return translate(s.postRepo.Delete(ctx, id), ErrPostNotFound, nil)
}
