package auth

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/logintoken"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/pkg/fingerprint"
)

// RefreshOutcome classifies the result of a Refresh call.
type RefreshOutcome int

const (
	// RefreshAnonymous means the request carried no usable credential.
	// Nothing suspicious happened and nothing was written to the response.
	RefreshAnonymous RefreshOutcome = iota

	// RefreshActive means a session is established and its token was
	// rotated into a fresh cookie.
	RefreshActive

	// RefreshTerminated means a security check failed; the request was
	// forcibly logged out and the redirect is already written. The caller
	// must not write to the response.
	RefreshTerminated
)

// Refresh advances the authenticated state of a request. With an active
// session it verifies the fingerprint binding and rotates the session
// token. Without one it attempts silent recovery from the persistent
// login-token cookie: the stored token is atomically consumed, a
// replacement is issued in the same series, and a new session starts.
//
// Any security failure terminates the request: tampered or replayed
// cookies, fingerprint mismatch. A consumed token that cannot complete
// recovery stays consumed; recovery fails closed.
func (s *Service) Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) (session.Session, RefreshOutcome) {
	sess, ok := s.CurrentSession(ctx, r)
	if !ok {
		return s.recoverFromLoginToken(ctx, w, r)
	}

	if s.cfg.FingerprintCheck {
		if err := fingerprint.Validate(r, sess.Fingerprint, s.fpOpts...); err != nil {
			s.terminate(ctx, w, r, "fingerprint_mismatch", &sess, err)
			return session.Session{}, RefreshTerminated
		}
	}

	if err := s.sessions.Regenerate(ctx, &sess); err != nil {
		s.log.ErrorContext(ctx, "failed to regenerate session",
			logger.Component("auth"), logger.SessionID(sess.ID), logger.Error(err))
		// The old token is still valid; keep the session rather than
		// dropping the user over a storage hiccup.
		return sess, RefreshActive
	}
	if err := s.setSessionCookie(w, sess.Token); err != nil {
		s.log.ErrorContext(ctx, "failed to refresh session cookie",
			logger.Component("auth"), logger.SessionID(sess.ID), logger.Error(err))
	}
	return sess, RefreshActive
}

// recoverFromLoginToken restores a session from the login-token cookie.
func (s *Service) recoverFromLoginToken(ctx context.Context, w http.ResponseWriter, r *http.Request) (session.Session, RefreshOutcome) {
	if !s.cookies.Has(r, logintoken.CookieName) {
		return session.Session{}, RefreshAnonymous
	}

	var payload logintoken.CookiePayload
	if err := s.cookies.GetJSON(r, logintoken.CookieName, &payload); err != nil || !payload.Valid() {
		s.terminate(ctx, w, r, "malformed_login_token_cookie", nil, err)
		return session.Session{}, RefreshTerminated
	}

	// At-most-once: the row is deleted on consume, so a concurrent request
	// or a thief presenting the same pair loses the race and lands here.
	tok, err := s.tokens.Consume(ctx, payload)
	if err != nil {
		s.log.WarnContext(ctx, "login token rejected",
			logger.Component("auth"),
			logger.SecurityEvent("login_token_replay_or_expired"),
			logger.TokenSeries(payload.Series),
			logger.ClientIP(s.clientIP(r)),
		)
		s.terminate(ctx, w, r, "", nil, nil)
		return session.Session{}, RefreshTerminated
	}

	u, err := s.users.GetByID(ctx, tok.UserID)
	if err != nil {
		// The consumed row is gone and no replacement is issued; the
		// grant chain ends here.
		s.terminate(ctx, w, r, "login_token_orphaned", nil, err)
		return session.Session{}, RefreshTerminated
	}

	sess, err := s.startSession(ctx, w, r, u)
	if err != nil {
		s.terminate(ctx, w, r, "recovery_session_failed", nil, err)
		return session.Session{}, RefreshTerminated
	}

	// Continue the grant: fresh single-use token, same series.
	if err := s.issueLoginToken(ctx, w, r, u, tok.Series); err != nil {
		s.log.ErrorContext(ctx, "failed to rotate login token",
			logger.Component("auth"), logger.UserID(u.ID),
			logger.TokenSeries(tok.Series), logger.Error(err))
		s.cookies.Delete(w, logintoken.CookieName)
	}

	s.log.InfoContext(ctx, "session recovered from login token",
		logger.Component("auth"),
		logger.Event("login_token_recovery"),
		logger.UserID(u.ID),
		logger.SessionID(sess.ID),
		logger.TokenSeries(tok.Series),
		logger.ClientIP(sess.IP),
	)
	return sess, RefreshActive
}

// terminate logs a security event (when named) and forces a logout with
// redirect. Used on every failed trust check in the refresh path.
func (s *Service) terminate(ctx context.Context, w http.ResponseWriter, r *http.Request, event string, sess *session.Session, cause error) {
	if event != "" {
		attrs := []any{
			logger.Component("auth"),
			logger.SecurityEvent(event),
			logger.ClientIP(s.clientIP(r)),
		}
		if sess != nil {
			attrs = append(attrs, logger.SessionID(sess.ID), logger.UserID(sess.UserID))
		}
		if cause != nil {
			attrs = append(attrs, logger.Error(cause))
		}
		s.log.WarnContext(ctx, "request terminated", attrs...)
	}
	s.Logout(ctx, w, r)
}
