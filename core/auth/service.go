package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/email"
	"github.com/dmitrymomot/authkit/core/iplog"
	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/logintoken"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/user"
	"github.com/dmitrymomot/authkit/pkg/clientip"
	"github.com/dmitrymomot/authkit/pkg/fingerprint"
)

// EmailPredicate decides whether an email address may register. Used for
// whitelist checks; a nil predicate allows every address.
type EmailPredicate func(email string) bool

// Service ties sessions, persistent login tokens, user accounts and
// cookies into the login/refresh/logout/enforce lifecycle.
type Service struct {
	cfg       Config
	sessions  *session.Manager
	tokens    *logintoken.Service
	users     user.Store
	cookies   *cookie.Manager
	ips       iplog.Store
	sender    email.EmailSender
	whitelist EmailPredicate
	fpOpts    []fingerprint.Option
	log       *slog.Logger
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithIPLog records login and signup addresses in the given store.
func WithIPLog(store iplog.Store) Option {
	return func(s *Service) { s.ips = store }
}

// WithEmailSender enables the signup confirmation email.
func WithEmailSender(sender email.EmailSender) Option {
	return func(s *Service) { s.sender = sender }
}

// WithEmailWhitelist restricts registration to addresses accepted by fn.
func WithEmailWhitelist(fn EmailPredicate) Option {
	return func(s *Service) { s.whitelist = fn }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithFingerprintOptions customizes fingerprint generation, e.g.
// fingerprint.WithUserAgent().
func WithFingerprintOptions(opts ...fingerprint.Option) Option {
	return func(s *Service) { s.fpOpts = opts }
}

// NewService assembles the auth service from its required collaborators.
func NewService(cfg Config, sessions *session.Manager, tokens *logintoken.Service, users user.Store, cookies *cookie.Manager, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		sessions: sessions,
		tokens:   tokens,
		users:    users,
		cookies:  cookies,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentSession returns the active session for the request without
// rotating its token. Expired or unknown tokens report no session.
func (s *Service) CurrentSession(ctx context.Context, r *http.Request) (session.Session, bool) {
	token, err := s.cookies.GetSigned(r, s.cfg.SessionCookieName)
	if err != nil {
		return session.Session{}, false
	}
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return session.Session{}, false
	}
	return sess, true
}

// IsLoggedIn reports the authenticated user ID for the request, if any.
func (s *Service) IsLoggedIn(ctx context.Context, r *http.Request) (uuid.UUID, bool) {
	sess, ok := s.CurrentSession(ctx, r)
	if !ok {
		return uuid.Nil, false
	}
	return sess.UserID, true
}

// IsStaff reports whether the request carries a moderator-class session.
func (s *Service) IsStaff(ctx context.Context, r *http.Request) bool {
	sess, ok := s.CurrentSession(ctx, r)
	return ok && sess.IsStaff()
}

func (s *Service) setSessionCookie(w http.ResponseWriter, token string) error {
	return s.cookies.SetSigned(w, s.cfg.SessionCookieName, token,
		cookie.WithMaxAge(int(s.sessions.TTL().Seconds())),
		cookie.WithSecure(s.cfg.SecureCookies),
	)
}

func (s *Service) setLoginTokenCookie(w http.ResponseWriter, payload logintoken.CookiePayload) error {
	return s.cookies.SetJSON(w, logintoken.CookieName, payload,
		cookie.WithMaxAge(int(s.cfg.RememberTTL.Seconds())),
		cookie.WithSecure(s.cfg.SecureCookies),
	)
}

func (s *Service) recordIP(ctx context.Context, userID uuid.UUID, ip string) {
	if s.ips == nil || ip == "" {
		return
	}
	if err := s.ips.Record(ctx, userID, ip, time.Now()); err != nil {
		s.log.WarnContext(ctx, "failed to record client address",
			logger.Component("auth"), logger.UserID(userID.String()), logger.Error(err))
	}
}

func (s *Service) clientFingerprint(r *http.Request) string {
	return fingerprint.Generate(r, s.fpOpts...)
}

func (s *Service) clientIP(r *http.Request) string {
	return clientip.GetIP(r)
}
