package ports

import (
	"context"
	"time"
)

// SessionStore maps bearer tokens to user ids with per-key expiration. The
// store is the sole authority on session validity: entries vanish when the
// TTL elapses and there is no other invalidation path.
type SessionStore interface {
	// Set registers token → userID, expiring after ttl.
	Set(ctx context.Context, token, userID string, ttl time.Duration) error

	// Get resolves a token to its user id. Returns
	// domain.ErrSessionNotFound when no live record exists and an error
	// wrapping domain.ErrStoreUnavailable on I/O failure.
	Get(ctx context.Context, token string) (string, error)
}
