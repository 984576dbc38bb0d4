package logintoken

import (
	"context"
	"crypto/rand"
	"io"
	"time"

	"github.com/google/uuid"
)

// Service implements the persistent-login token protocol: issuing grants,
// consuming them exactly once, and revoking them. It is deliberately
// unaware of HTTP; transports hand it decoded cookie payloads.
type Service struct {
	store Store
	rand  io.Reader
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithRand overrides the random source. Tests inject deterministic
// readers; production uses crypto/rand.
func WithRand(r io.Reader) Option {
	return func(s *Service) {
		s.rand = r
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a token service backed by the given store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		rand:  rand.Reader,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue creates a new single-use token for the user and persists it.
// An empty series starts a new grant chain; passing the series of a just
// consumed token continues its chain, which is what lets replay detection
// correlate rotations. Exactly one row is created per call.
func (s *Service) Issue(ctx context.Context, userID uuid.UUID, series, ip string) (*Token, error) {
	if series == "" {
		var err error
		if series, err = newSeries(s.rand); err != nil {
			return nil, err
		}
	}

	value, err := newTokenValue(s.rand)
	if err != nil {
		return nil, err
	}

	t := &Token{
		UserID:    userID,
		Series:    series,
		Value:     value,
		IPIssued:  ip,
		IPLast:    ip,
		CreatedAt: s.now(),
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Consume redeems the client-held payload for its stored row, deleting the
// row in the same step. Returns ErrMalformedCookie for unusable payloads
// and ErrNotFound when no row matches; the latter means either benign
// expiry or replay of a superseded cookie, and the two are intentionally
// indistinguishable. Callers must fail closed on any error.
func (s *Service) Consume(ctx context.Context, payload CookiePayload) (*Token, error) {
	if !payload.Valid() {
		return nil, ErrMalformedCookie
	}
	return s.store.Consume(ctx, payload.Token, payload.Series)
}

// Rotate consumes-and-reissues in one call: the consumed row's series is
// carried into a fresh token for the same user. This is the one-time-use
// step of the protocol; after it returns, the payload the client sent is
// permanently dead.
func (s *Service) Rotate(ctx context.Context, payload CookiePayload, ip string) (*Token, error) {
	consumed, err := s.Consume(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.Issue(ctx, consumed.UserID, consumed.Series, ip)
}

// Revoke deletes the row matching the payload, if any. Unusable payloads
// and missing rows are ignored: revocation runs on every logout and must
// succeed regardless of client state.
func (s *Service) Revoke(ctx context.Context, payload CookiePayload) error {
	if !payload.Valid() {
		return nil
	}
	return s.store.Delete(ctx, payload.Token, payload.Series)
}
