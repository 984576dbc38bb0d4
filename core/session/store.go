package session

import "context"

// Store defines the persistence interface for sessions, keyed by the
// rotating session token. Implementations must handle concurrent access
// safely and honor each session's ExpiresAt.
type Store interface {
	// Get returns the session for the token, or ErrNotFound.
	Get(ctx context.Context, token string) (*Session, error)
	// Save upserts the session under its current token.
	Save(ctx context.Context, sess *Session) error
	// Delete removes the session stored under the token. Missing tokens
	// are not an error.
	Delete(ctx context.Context, token string) error
	// DeleteExpired removes expired sessions and returns how many were
	// deleted. Stores with native TTL eviction may report 0.
	DeleteExpired(ctx context.Context) (int64, error)
}
