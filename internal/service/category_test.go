package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/validation"
	"gorm.io/gorm"
)

func TestCategoryService_Create(t *testing.T) {
	repo := &mockCategoryRepository{}
	svc := NewCategoryService(repo)

	repo.createFunc = func(ctx context.Context, category *models.Category) error {
		category.ID = 1
		return nil
	}

	category, err := svc.Create(context.Background(), CategoryRequest{Name: "  Go  "})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if category.ID != 1 || category.Name != "Go" {
		t.Errorf("category = %+v", category)
	}

	repo.createFunc = func(ctx context.Context, category *models.Category) error {
		return fmt.Errorf("failed to create category: %w", gorm.ErrDuplicatedKey)
	}
	if _, err := svc.Create(context.Background(), CategoryRequest{Name: "Go"}); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("Create(duplicate) error = %v, want ErrCategoryExists", err)
	}
}

func TestCategoryService_Create_TrimmedLength(t *testing.T) {
	repo := &mockCategoryRepository{
		createFunc: func(ctx context.Context, category *models.Category) error {
			t.Fatalf("name %q must be rejected before storage", category.Name)
			return nil
		},
	}
	svc := NewCategoryService(repo)

	for _, name := range []string{"   ", " x ", "\t\n"} {
		_, err := svc.Create(context.Background(), CategoryRequest{Name: name})
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			t.Fatalf("Create(%q) error = %v, want validation.Errors", name, err)
		}
		if len(verrs) != 1 || verrs[0].Field != "name" || verrs[0].Message != "must be at least 2 characters" {
			t.Errorf("Create(%q) field errors = %v", name, verrs)
		}
	}
}

func TestCategoryService_Update(t *testing.T) {
	repo := &mockCategoryRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.Category, error) {
			if id != 1 {
				return nil, fmt.Errorf("failed to find category by id %d: %w", id, gorm.ErrRecordNotFound)
			}
			return &models.Category{ID: 1, Name: "Go"}, nil
		},
	}
	svc := NewCategoryService(repo)

	var saved models.Category
	repo.updateFunc = func(ctx context.Context, category *models.Category) error {
		saved = *category
		return nil
	}

	if _, err := svc.Update(context.Background(), 1, CategoryRequest{Name: "Golang"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if saved.Name != "Golang" {
		t.Errorf("saved name = %q, want Golang", saved.Name)
	}

	var verrs validation.Errors
	if _, err := svc.Update(context.Background(), 1, CategoryRequest{Name: "  "}); !errors.As(err, &verrs) {
		t.Errorf("Update(blank) error = %v, want validation.Errors", err)
	}
	if saved.Name != "Golang" {
		t.Errorf("blank rename reached storage, saved name = %q", saved.Name)
	}

	if _, err := svc.Update(context.Background(), 2, CategoryRequest{Name: "Rust"}); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrCategoryNotFound", err)
	}

	repo.updateFunc = func(ctx context.Context, category *models.Category) error {
		return fmt.Errorf("failed to update category: %w", gorm.ErrDuplicatedKey)
	}
	if _, err := svc.Update(context.Background(), 1, CategoryRequest{Name: "Tech"}); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("Update(duplicate) error = %v, want ErrCategoryExists", err)
	}
}

func TestCategoryService_Delete(t *testing.T) {
	repo := &mockCategoryRepository{
		deleteFunc: func(ctx context.Context, id int64) error {
			if id != 1 {
				return fmt.Errorf("failed to delete category id %d: %w", id, gorm.ErrRecordNotFound)
			}
			return nil
		},
	}
	svc := NewCategoryService(repo)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), 2); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrCategoryNotFound", err)
	}
}
