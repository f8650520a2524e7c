package service

import (
	"strings"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/validation"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,trimmin=3,trimmax=64"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the public view of a user returned after login.
type UserSummary struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        UserSummary `json:"user"`
}

type CreatePostRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=140"`
	Body        string  `json:"body" binding:"required,min=10"`
	Published   *bool   `json:"published"`
	CategoryIDs []int64 `json:"category_ids"`
	NewCategory string  `json:"new_category" binding:"omitempty,trimmax=64"`
}

// UpdatePostRequest is a partial update. Nil fields are left untouched;
// a present category_ids replaces the whole category set.
type UpdatePostRequest struct {
	Title       *string  `json:"title" binding:"omitnil,min=3,max=140"`
	Body        *string  `json:"body" binding:"omitnil,min=10"`
	Published   *bool    `json:"published"`
	CategoryIDs *[]int64 `json:"category_ids"`
	NewCategory string   `json:"new_category" binding:"omitempty,trimmax=64"`
}

type CommentRequest struct {
	Body string `json:"body" binding:"required,min=1"`
}

type CommentVisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,trimmin=2,trimmax=64"`
}

// UpdateRoleRequest carries the new role. Unknown roles are rejected by
// the handler.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" enums:"user,moderator,admin"`
}

// Length limits enforced on trimmed names.
const (
	usernameMinLen     = 3
	usernameMaxLen     = 64
	categoryNameMinLen = 2
	categoryNameMaxLen = 64
)

// newCategoryName trims an optional inline category name. A blank name
// means no new category; anything else must satisfy the category limits.
func newCategoryName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	return validation.Trimmed("new_category", name, categoryNameMinLen, categoryNameMaxLen)
}
