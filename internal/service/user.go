package service

import (
	"context"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
)

// UserService administers accounts. Role and status changes end every
// session the affected user holds.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	UpdateRole(ctx context.Context, actor Actor, userID int64, role models.Role) (*models.User, error)
	Deactivate(ctx context.Context, actor Actor, userID int64) (*models.User, error)
}

type userService struct {
	userRepo    repository.UserRepository
	revocations repository.RevocationStore
}

func NewUserService(userRepo repository.UserRepository, revocations repository.RevocationStore) UserService {
	return &userService{userRepo: userRepo, revocations: revocations}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrUserNotFound, nil)
	}
	return user, nil
}

func (s *userService) UpdateRole(ctx context.Context, actor Actor, userID int64, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if actor.Owns(userID) {
		return nil, ErrSelfRole
	}
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	err := s.withSessionsEnded(ctx, userID, func() error {
		return s.userRepo.UpdateRole(ctx, userID, role)
	})
	if err != nil {
		return nil, translate(err, ErrUserNotFound, nil)
	}
	return s.Get(ctx, userID)
}

func (s *userService) Deactivate(ctx context.Context, actor Actor, userID int64) (*models.User, error) {
	if actor.Owns(userID) {
		return nil, ErrSelfDisable
	}
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	err := s.withSessionsEnded(ctx, userID, func() error {
		return s.userRepo.SetActive(ctx, userID, false)
	})
	if err != nil {
		return nil, translate(err, ErrUserNotFound, nil)
	}
	return s.Get(ctx, userID)
}

// withSessionsEnded runs write between two session version bumps. The first
// bump keeps a failed store from leaving the old account state usable; the
// second ends any session a login opened before write committed.
func (s *userService) withSessionsEnded(ctx context.Context, userID int64, write func() error) error {
	if _, err := s.revocations.BumpSessionVersion(ctx, userID); err != nil {
		return err
	}
	if err := write(); err != nil {
		return err
	}
	_, err := s.revocations.BumpSessionVersion(ctx, userID)
	return err
}
