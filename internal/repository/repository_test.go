package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/pkg/database"
	"gorm.io/gorm"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "blog.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db, models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: username + "@example.com", IsActive: true}
	cred := &models.Credential{PasswordHash: "hash", Role: role}
	if err := NewUserRepository(db).CreateWithCredential(context.Background(), user, cred); err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID int64, title string, published bool, sel CategorySelection) *models.Post {
	t.Helper()

	post := &models.Post{Title: title, Body: "a body long enough", Published: published, AuthorID: authorID}
	if err := NewPostRepository(db).Create(context.Background(), post, sel); err != nil {
		t.Fatalf("Failed to create post %s: %v", title, err)
	}
	return post
}

func categoryNames(cats []models.Category) []string {
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names
}
