package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"github.com/GunarsK-portfolio/blog-service/internal/repository"
	"github.com/GunarsK-portfolio/blog-service/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTypeBearer = "Bearer"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
	// ValidateToken checks the signature and expiry of a token, then that it
	// was neither logged out nor issued before the user's last role or
	// status change.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
	// TokenStatus returns the remaining lifetime of a valid token in seconds.
	TokenStatus(ctx context.Context, token string) (int64, error)
}

type authService struct {
	userRepo    repository.UserRepository
	jwtService  JWTService
	revocations repository.RevocationStore
	hashCost    int
	now         func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, revocations repository.RevocationStore) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		revocations: revocations,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)
	username, err := validation.Trimmed("username", req.Username, usernameMinLen, usernameMaxLen)
	if err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, email, username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Username: username, Email: email, IsActive: true}
	cred := &models.Credential{PasswordHash: string(hash), Role: models.RoleUser}
	if err := s.userRepo.CreateWithCredential(ctx, user, cred); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent registration.
			if _, lookupErr := s.userRepo.FindByEmail(ctx, email); lookupErr == nil {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	user.Credential = cred
	return user, nil
}

func (s *authService) ensureAvailable(ctx context.Context, email, username string) error {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	_, err = s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Credential == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Credential.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	version, err := s.revocations.SessionVersion(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, _, err := s.jwtService.GenerateToken(user, version)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(s.jwtService.GetExpiry().Seconds()),
		User: UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role(),
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return err
	}
	return s.revocations.RevokeToken(ctx, claims.ID, s.remaining(claims))
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revocations.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	version, err := s.revocations.SessionVersion(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if claims.SessionVersion != version {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

func (s *authService) TokenStatus(ctx context.Context, token string) (int64, error) {
	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return 0, err
	}
	return int64(s.remaining(claims).Seconds()), nil
}

func (s *authService) remaining(claims *Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Sub(s.now())
}
