package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/logintoken"
	"github.com/dmitrymomot/authkit/core/password"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/user"
)

// LoginParams carries the credentials from the login form.
type LoginParams struct {
	Email      string
	Password   string
	RememberMe bool
}

// Login verifies credentials, starts a server-side session and sets the
// session cookie. With RememberMe it additionally issues a persistent
// login token in a fresh series and sets the login-token cookie.
//
// Unknown email and wrong password return the same ErrInvalidCredentials;
// a dummy hash verification keeps the two paths in the same time class.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, params LoginParams) (session.Session, error) {
	if params.Email == "" {
		return session.Session{}, newValidationError("email", "email is required")
	}
	if params.Password == "" {
		return session.Session{}, newValidationError("password", "password is required")
	}

	u, err := s.users.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			password.VerifyDummy(params.Password)
			return session.Session{}, ErrInvalidCredentials
		}
		return session.Session{}, err
	}
	if !password.Verify(params.Password, u.PasswordHash) {
		return session.Session{}, ErrInvalidCredentials
	}
	if !u.Enabled {
		return session.Session{}, ErrAccountDisabled
	}

	sess, err := s.startSession(ctx, w, r, u)
	if err != nil {
		return session.Session{}, err
	}

	if params.RememberMe {
		if err := s.issueLoginToken(ctx, w, r, u, ""); err != nil {
			// The session is already established; a failed token grant
			// only loses the remember-me convenience.
			s.log.ErrorContext(ctx, "failed to issue login token",
				logger.Component("auth"), logger.UserID(u.ID), logger.Error(err))
		}
	}

	s.log.InfoContext(ctx, "user logged in",
		logger.Component("auth"),
		logger.Event("login"),
		logger.UserID(u.ID),
		logger.SessionID(sess.ID),
		logger.ClientIP(sess.IP),
	)
	return sess, nil
}

// startSession creates a session bound to the request fingerprint, saves
// it and sets the session cookie.
func (s *Service) startSession(ctx context.Context, w http.ResponseWriter, r *http.Request, u *user.User) (session.Session, error) {
	fp := s.clientFingerprint(r)
	ip := s.clientIP(r)

	sess, err := s.sessions.Create(ctx, u, session.NewSessionParams{
		Fingerprint: fp,
		IP:          ip,
	})
	if err != nil {
		return session.Session{}, err
	}
	if err := s.setSessionCookie(w, sess.Token); err != nil {
		return session.Session{}, err
	}
	s.recordIP(ctx, u.ID, ip)
	return sess, nil
}

// issueLoginToken grants a single-use persistent token and sets the
// login-token cookie. An empty series starts a new one; a non-empty
// series continues an existing grant.
func (s *Service) issueLoginToken(ctx context.Context, w http.ResponseWriter, r *http.Request, u *user.User, series string) error {
	tok, err := s.tokens.Issue(ctx, u.ID, series, s.clientIP(r))
	if err != nil {
		return err
	}
	return s.setLoginTokenCookie(w, logintoken.CookiePayload{
		Token:  tok.Value,
		Series: tok.Series,
	})
}
