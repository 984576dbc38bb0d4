package session

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/authkit/core/user"
)

// Manager handles session lifecycle: creation on login, retrieval and
// regeneration on refresh, destruction on logout.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager creates a session manager with the specified store and
// session time-to-live.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
	}
}

// Create builds and persists a session for an authenticated user.
func (m *Manager) Create(ctx context.Context, u *user.User, params NewSessionParams) (Session, error) {
	sess, err := New(u, params, m.ttl)
	if err != nil {
		return Session{}, err
	}
	if err := m.store.Save(ctx, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// GetByToken retrieves a session and validates expiration. Expired rows
// are removed from the store on the way out.
func (m *Manager) GetByToken(ctx context.Context, token string) (Session, error) {
	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return Session{}, err
	}

	if sess.IsExpired() {
		// Best-effort cleanup; the caller treats the session as gone
		// either way.
		_ = m.store.Delete(ctx, token)
		return Session{}, ErrExpired
	}

	return *sess, nil
}

// Regenerate rotates the session's token and slides its expiry, storing it
// under the new token and removing the old entry. Known limitation:
// concurrent requests sharing one cookie are not locked against each
// other, so a parallel request may lose its session token mid-flight.
func (m *Manager) Regenerate(ctx context.Context, sess *Session) error {
	oldToken := sess.Token

	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.ExpiresAt = time.Now().Add(m.ttl)

	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}
	if err := m.store.Delete(ctx, oldToken); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Delete destroys the session stored under the token.
func (m *Manager) Delete(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// CleanupExpired removes all expired sessions from the store.
// Should be called periodically for stores without native TTL eviction.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// TTL returns the session time-to-live duration.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
