package service

import (
	"errors"

	"gorm.io/gorm"
)

// Error categories. Handlers map these to transport status codes.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("unauthenticated")
)

var (
	ErrInvalidCredentials = newError(ErrUnauthenticated, "invalid credentials")
	ErrInvalidToken       = newError(ErrUnauthenticated, "invalid token")
	ErrTokenRevoked       = newError(ErrUnauthenticated, "token has been revoked")

	ErrUserInactive        = newError(ErrPermissionDenied, "user account is deactivated")
	ErrNotOwner            = newError(ErrPermissionDenied, "only the author or an admin may change this resource")
	ErrNotCommentModerator = newError(ErrPermissionDenied, "only the author, a moderator or an admin may change this comment")
	ErrSelfRole            = newError(ErrPermissionDenied, "you cannot change your own role")
	ErrSelfDisable         = newError(ErrPermissionDenied, "you cannot deactivate your own account")

	ErrUserNotFound     = newError(ErrNotFound, "user not found")
	ErrPostNotFound     = newError(ErrNotFound, "post not found")
	ErrCommentNotFound  = newError(ErrNotFound, "comment not found")
	ErrCategoryNotFound = newError(ErrNotFound, "category not found")

	ErrEmailTaken     = newError(ErrConflict, "email already registered")
	ErrUsernameTaken  = newError(ErrConflict, "username already taken")
	ErrCategoryExists = newError(ErrConflict, "category already exists")

	ErrInvalidRole = errors.New("invalid role")
)

// domainError carries a client facing message and unwraps to its category.
type domainError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &domainError{kind: kind, msg: msg}
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() error { return e.kind }

// translate maps storage errors onto the given domain sentinels. Unknown
// errors are returned unchanged.
func translate(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	default:
		return err
	}
}
