package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/core/user"
)

// Session is the server-side authenticated session. The client holds only
// the Token; everything else lives in the store.
type Session struct {
	// ID is the stable unique session identifier that never changes during
	// the session lifecycle. Logs reference it so a session stays traceable
	// across token rotations.
	ID uuid.UUID

	// Token is the opaque session identifier delivered via cookie
	// (32 bytes, base64url). It rotates on every refresh as the
	// anti-fixation measure, the equivalent of regenerating a session id.
	Token string

	UserID uuid.UUID
	Class  user.Class

	// Enabled is the account's enabled flag snapshotted at login time.
	Enabled bool

	// Fingerprint binds the session to the network origin it was created
	// from. A refresh whose recomputed fingerprint differs marks the
	// session as compromised.
	Fingerprint string

	IP string

	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSessionParams carries the request-derived inputs for a new session.
type NewSessionParams struct {
	Fingerprint string
	IP          string
}

// New creates a session for an authenticated user, snapshotting the
// account's class and enabled flag.
func New(u *user.User, params NewSessionParams, ttl time.Duration) (Session, error) {
	if params.IP == "" {
		return Session{}, ErrMissingIP
	}

	token, err := generateToken()
	if err != nil {
		return Session{}, errors.Join(ErrTokenGeneration, err)
	}

	now := time.Now()
	return Session{
		ID:          uuid.New(),
		Token:       token,
		UserID:      u.ID,
		Class:       u.Class,
		Enabled:     u.Enabled,
		Fingerprint: params.Fingerprint,
		IP:          params.IP,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Regenerate rotates the session token while preserving the session ID and
// content. Called on every refresh so a fixated or leaked cookie value goes
// stale within one request.
func (s *Session) Regenerate() error {
	token, err := generateToken()
	if err != nil {
		return errors.Join(ErrTokenGeneration, err)
	}
	s.Token = token
	s.UpdatedAt = time.Now()
	return nil
}

// IsExpired returns true if the session has passed its expiry.
func (s Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsStaff returns true if the session's privilege class is at least
// moderator.
func (s Session) IsStaff() bool {
	return s.Class >= user.ClassModerator
}

// generateToken creates a cryptographically secure random token using
// 32 bytes (256 bits) encoded as base64 URL-safe string without padding.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
