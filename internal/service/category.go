package service

import (
	"context"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
	"github.com/GunarsK-portfolio/blog-service/internal/validation"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, req CategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id int64, req CategoryRequest) (*models.Category, error)
	// Delete removes the category and its post links; the posts remain.
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Create(ctx context.Context, req CategoryRequest) (*models.Category, error) {
	name, err := categoryName(req.Name)
	if err != nil {
		return nil, err
	}
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, translate(err, nil, ErrCategoryExists)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, req CategoryRequest) (*models.Category, error) {
	name, err := categoryName(req.Name)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrCategoryNotFound, nil)
	}
	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, translate(err, ErrCategoryNotFound, ErrCategoryExists)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return translate(s.categoryRepo.Delete(ctx, id), ErrCategoryNotFound, nil)
}

func categoryName(name string) (string, error) {
	return validation.Trimmed("name", name, categoryNameMinLen, categoryNameMaxLen)
}
