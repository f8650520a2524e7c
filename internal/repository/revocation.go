package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore tracks tokens and sessions that must no longer be honored.
type RevocationStore interface {
	// RevokeToken denies a single token id until ttl elapses.
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	// SessionVersion returns the user's current session version. Tokens
	// carrying an older version are no longer valid.
	SessionVersion(ctx context.Context, userID int64) (int64, error)
	// BumpSessionVersion invalidates every token issued to the user so far.
	BumpSessionVersion(ctx context.Context, userID int64) (int64, error)
	Ping(ctx context.Context) error
}

type revocationStore struct {
	redis *redis.Client
}

// NewRevocationStore creates a Redis backed RevocationStore.
func NewRevocationStore(client *redis.Client) RevocationStore {
	return &revocationStore{redis: client}
}

func revokedTokenKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}

func sessionVersionKey(userID int64) string {
	return fmt.Sprintf("session_version:%d", userID)
}

func (s *revocationStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.redis.Set(ctx, revokedTokenKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", tokenID, err)
	}
	return nil
}

func (s *revocationStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.redis.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token %s: %w", tokenID, err)
	}
	return n > 0, nil
}

func (s *revocationStore) SessionVersion(ctx context.Context, userID int64) (int64, error) {
	v, err := s.redis.Get(ctx, sessionVersionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read session version of user %d: %w", userID, err)
	}
	return v, nil
}

func (s *revocationStore) BumpSessionVersion(ctx context.Context, userID int64) (int64, error) {
	v, err := s.redis.Incr(ctx, sessionVersionKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to bump session version of user %d: %w", userID, err)
	}
	return v, nil
}

func (s *revocationStore) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}
