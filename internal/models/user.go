// Package models contains data models for the blog service.
package models

import "time"

// User represents a registered account. Users are never hard-deleted,
// only deactivated.
type User struct {
	ID         int64       `json:"id" gorm:"primaryKey"`
	Username   string      `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Email      string      `json:"email" gorm:"uniqueIndex;size:120;not null"`
	IsActive   bool        `json:"is_active" gorm:"not null"`
	CreatedAt  time.Time   `json:"created_at"`
	Credential *Credential `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// Role returns the role stored on the user's credential, falling back to
// RoleUser when the credential was not loaded.
func (u *User) Role() Role {
	if u.Credential == nil || u.Credential.Role == "" {
		return RoleUser
	}
	return u.Credential.Role
}

// Credential holds the secret material and role of exactly one user.
type Credential struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	UserID       int64  `json:"user_id" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	Role         Role   `json:"role" gorm:"size:20;not null;default:user"`
}

// TableName returns the database table name for the Credential model.
func (Credential) TableName() string {
	return "user_credentials"
}
