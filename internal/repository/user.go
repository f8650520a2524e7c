// Package repository provides the data access layer for the blog service.
package repository

import (
	"context"
	"fmt"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	CreateWithCredential(ctx context.Context, user *models.User, cred *models.Credential) error
	UpdateRole(ctx context.Context, userID int64, role models.Role) error
	SetActive(ctx context.Context, userID int64, active bool) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Credential").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Credential").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Credential").First(&user, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Preload("Credential").Order("username ASC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateWithCredential inserts the user and its credential in one
// transaction so a user never exists without a credential.
func (r *userRepository) CreateWithCredential(ctx context.Context, user *models.User, cred *models.Credential) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Credential").Create(user).Error; err != nil {
			return err
		}
		cred.UserID = user.ID
		if err := tx.Create(cred).Error; err != nil {
			return err
		}
		user.Credential = cred
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Username, err)
	}
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, userID int64, role models.Role) error {
	result := r.db.WithContext(ctx).Model(&models.Credential{}).Where("user_id = ?", userID).Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("failed to update role for user %d: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update role for user %d: %w", userID, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *userRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to set active=%t for user %d: %w", active, userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to set active=%t for user %d: %w", active, userID, gorm.ErrRecordNotFound)
	}
	return nil
}
