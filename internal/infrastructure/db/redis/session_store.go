package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

// SessionStore maps bearer tokens to user ids in Redis. The keyspace is flat:
// the token itself is the key. Expiry is delegated entirely to Redis TTLs —
// there is no explicit deletion path.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Set registers token → userID with the given TTL.
func (s *SessionStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Get resolves a token to its user id. A missing key means the session never
// existed or has expired; Redis does not distinguish the two and neither do we.
func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, token).Result()
	if err == redis.Nil {
		return "", domain.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session lookup: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return userID, nil
}
