package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
	"github.com/GunarsK-portfolio/blog-service/internal/validation"
	"gorm.io/gorm"
)

var (
	testOwner     = Actor{UserID: 10, Role: models.RoleUser, Active: true}
	testStranger  = Actor{UserID: 11, Role: models.RoleUser, Active: true}
	testModerator = Actor{UserID: 12, Role: models.RoleModerator, Active: true}
)

func setupTestPostService(t *testing.T) (*postService, *mockPostRepository) {
	t.Helper()

	mockRepo := &mockPostRepository{}
	svc := NewPostService(mockRepo).(*postService)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc, mockRepo
}

func storedPost(id, authorID int64) func(ctx context.Context, postID int64) (*models.Post, error) {
	return func(ctx context.Context, postID int64) (*models.Post, error) {
		if postID != id {
			return nil, fmt.Errorf("failed to find post by id %d: %w", postID, gorm.ErrRecordNotFound)
		}
		return &models.Post{ID: id, Title: "Original", Body: "original body", Published: true, AuthorID: authorID}, nil
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// =============================================================================
// Create Tests
// =============================================================================

func TestPostService_Create(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)

	var created *models.Post
	var selection repository.CategorySelection
	mockRepo.createFunc = func(ctx context.Context, post *models.Post, sel repository.CategorySelection) error {
		post.ID = 5
		created = post
		selection = sel
		return nil
	}
	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Post, error) {
		return created, nil
	}

	post, err := svc.Create(context.Background(), testOwner, CreatePostRequest{
		Title:       "Hello",
		Body:        "a long enough body",
		CategoryIDs: []int64{1, 2},
		NewCategory: "  Tech  ",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if post.AuthorID != testOwner.UserID {
		t.Errorf("AuthorID = %d, want %d", post.AuthorID, testOwner.UserID)
	}
	if !post.Published {
		t.Error("posts are published by default")
	}
	if !post.CreatedAt.Equal(svc.now()) || !post.UpdatedAt.Equal(svc.now()) {
		t.Errorf("timestamps = %v/%v, want %v", post.CreatedAt, post.UpdatedAt, svc.now())
	}
	if selection.NewName != "Tech" || len(selection.IDs) != 2 || !selection.Replace {
		t.Errorf("selection = %+v", selection)
	}
}

func TestPostService_Create_Unpublished(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)

	var created *models.Post
	mockRepo.createFunc = func(ctx context.Context, post *models.Post, sel repository.CategorySelection) error {
		created = post
		return nil
	}
	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Post, error) { return created, nil }

	post, err := svc.Create(context.Background(), testOwner, CreatePostRequest{
		Title: "Draft", Body: "not ready for readers", Published: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if post.Published {
		t.Error("explicit published=false must be kept")
	}
}

func TestPostService_Create_CategoryRace(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)

	mockRepo.createFunc = func(ctx context.Context, post *models.Post, sel repository.CategorySelection) error {
		return fmt.Errorf("failed to create post: %w", gorm.ErrDuplicatedKey)
	}

	_, err := svc.Create(context.Background(), testOwner, CreatePostRequest{
		Title: "Hello", Body: "a long enough body", NewCategory: "Tech",
	})
	if !errors.Is(err, ErrCategoryExists) {
		t.Errorf("Create() error = %v, want ErrCategoryExists", err)
	}
}

func TestPostService_Create_ShortCategoryName(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)

	mockRepo.createFunc = func(ctx context.Context, post *models.Post, sel repository.CategorySelection) error {
		t.Fatal("short category names must be rejected before storage")
		return nil
	}

	_, err := svc.Create(context.Background(), testOwner, CreatePostRequest{
		Title: "Hello", Body: "a long enough body", NewCategory: " y ",
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("Create() error = %v, want validation.Errors", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "new_category" {
		t.Errorf("field errors = %v, want new_category", verrs)
	}
}

func TestPostService_Create_BlankCategoryIgnored(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)

	var created *models.Post
	var selection repository.CategorySelection
	mockRepo.createFunc = func(ctx context.Context, post *models.Post, sel repository.CategorySelection) error {
		created = post
		selection = sel
		return nil
	}
	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Post, error) { return created, nil }

	if _, err := svc.Create(context.Background(), testOwner, CreatePostRequest{
		Title: "Hello", Body: "a long enough body", NewCategory: "    ",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if selection.NewName != "" {
		t.Errorf("NewName = %q, want blank name ignored", selection.NewName)
	}
}

// =============================================================================
// Update Tests
// =============================================================================

func TestPostService_Update_ShortCategoryName(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)
	mockRepo.findByIDFunc = storedPost(3, testOwner.UserID)
	mockRepo.updateFunc = func(ctx context.Context, post *models.Post, sel *repository.CategorySelection) error {
		t.Fatal("short category names must be rejected before storage")
		return nil
	}

	_, err := svc.Update(context.Background(), testOwner, 3, UpdatePostRequest{NewCategory: "\tx\n"})
	var verrs validation.Errors
	if !errors.As(err, &verrs) || verrs[0].Field != "new_category" {
		t.Errorf("Update() error = %v, want new_category field error", err)
	}
}

func TestPostService_Update_Permissions(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{name: "owner", actor: testOwner},
		{name: "admin", actor: testAdmin},
		{name: "other user", actor: testStranger, wantErr: ErrNotOwner},
		{name: "moderator", actor: testModerator, wantErr: ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := setupTestPostService(t)
			mockRepo.findByIDFunc = storedPost(3, testOwner.UserID)

			updated := false
			mockRepo.updateFunc = func(ctx context.Context, post *models.Post, sel *repository.CategorySelection) error {
				updated = true
				return nil
			}

			_, err := svc.Update(context.Background(), tt.actor, 3, UpdatePostRequest{Title: strPtr("New title")})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
			if updated != (tt.wantErr == nil) {
				t.Errorf("repository update called = %v", updated)
			}
		})
	}
}

func TestPostService_Update_Fields(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)
	mockRepo.findByIDFunc = storedPost(3, testOwner.UserID)

	var written *models.Post
	var sel *repository.CategorySelection
	mockRepo.updateFunc = func(ctx context.Context, post *models.Post, s *repository.CategorySelection) error {
		written = post
		sel = s
		return nil
	}

	_, err := svc.Update(context.Background(), testOwner, 3, UpdatePostRequest{
		Body:      strPtr("replacement body"),
		Published: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if written.Title != "Original" {
		t.Errorf("Title = %q, omitted fields must be kept", written.Title)
	}
	if written.Body != "replacement body" || written.Published {
		t.Errorf("written = %+v", written)
	}
	if !written.UpdatedAt.Equal(svc.now()) {
		t.Errorf("UpdatedAt = %v, want %v", written.UpdatedAt, svc.now())
	}
	if sel != nil {
		t.Errorf("categories must be untouched, got %+v", sel)
	}
}

func TestCategoryChange(t *testing.T) {
	empty := []int64{}
	ids := []int64{4}

	tests := []struct {
		name string
		req  UpdatePostRequest
		want *repository.CategorySelection
	}{
		{name: "nothing", req: UpdatePostRequest{}, want: nil},
		{name: "blank name only", req: UpdatePostRequest{NewCategory: "   "}, want: nil},
		{
			name: "name only appends",
			req:  UpdatePostRequest{NewCategory: " Go "},
			want: &repository.CategorySelection{NewName: "Go"},
		},
		{
			name: "empty ids clear",
			req:  UpdatePostRequest{CategoryIDs: &empty},
			want: &repository.CategorySelection{IDs: empty, Replace: true},
		},
		{
			name: "ids with name replace",
			req:  UpdatePostRequest{CategoryIDs: &ids, NewCategory: "Tech"},
			want: &repository.CategorySelection{IDs: ids, NewName: "Tech", Replace: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := categoryChange(tt.req)
			if err != nil {
				t.Fatalf("categoryChange() error = %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("categoryChange() = %+v, want %+v", got, tt.want)
			}
			if got == nil {
				return
			}
			if got.NewName != tt.want.NewName || got.Replace != tt.want.Replace || len(got.IDs) != len(tt.want.IDs) {
				t.Errorf("categoryChange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)
	mockRepo.findByIDFunc = storedPost(3, testOwner.UserID)

	_, err := svc.Update(context.Background(), testAdmin, 42, UpdatePostRequest{})
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Update() error = %v, want ErrPostNotFound", err)
	}
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestPostService_Delete(t *testing.T) {
	svc, mockRepo := setupTestPostService(t)
	mockRepo.findByIDFunc = storedPost(3, testOwner.UserID)

	deleted := int64(0)
	mockRepo.deleteFunc = func(ctx context.Context, id int64) error {
		deleted = id
		return nil
	}

	if err := svc.Delete(context.Background(), testStranger, 3); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Delete() by stranger error = %v, want ErrNotOwner", err)
	}
	if deleted != 0 {
		t.Fatal("post must not be deleted by a stranger")
	}

	if err := svc.Delete(context.Background(), testAdmin, 3); err != nil {
		t.Fatalf("Delete() by admin error = %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted id = %d, want 3", deleted)
	}

	if err := svc.Delete(context.Background(), testAdmin, 4); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrPostNotFound", err)
	}
}
