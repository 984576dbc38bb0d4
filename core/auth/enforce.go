package auth

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/user"
)

// Enforce is the gate handlers call before serving protected content. It
// refreshes the request's authenticated state and requires at least
// minClass. On any failure, missing session, failed recovery or
// insufficient class, the request is logged out and redirected; callers
// must return without writing when ok is false.
func (s *Service) Enforce(ctx context.Context, w http.ResponseWriter, r *http.Request, minClass user.Class) (session.Session, bool) {
	sess, outcome := s.Refresh(ctx, w, r)
	switch outcome {
	case RefreshTerminated:
		return session.Session{}, false
	case RefreshAnonymous:
		s.Logout(ctx, w, r)
		return session.Session{}, false
	}

	if sess.Class < minClass {
		s.log.WarnContext(ctx, "insufficient privilege",
			logger.Component("auth"),
			logger.SecurityEvent("privilege_denied"),
			logger.Error(ErrInsufficientPrivilege),
			logger.UserID(sess.UserID),
			logger.SessionID(sess.ID),
			logger.ClientIP(sess.IP),
		)
		// Refresh stored the session under a rotated token that only the
		// response knows; Logout resolves via the request's stale cookie
		// and would miss it.
		if err := s.sessions.Delete(ctx, sess.Token); err != nil {
			s.log.WarnContext(ctx, "failed to delete session",
				logger.Component("auth"), logger.SessionID(sess.ID), logger.Error(err))
		}
		s.Logout(ctx, w, r)
		return session.Session{}, false
	}
	return sess, true
}

// EnforceUser requires any authenticated account.
func (s *Service) EnforceUser(ctx context.Context, w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	return s.Enforce(ctx, w, r, user.ClassUser)
}

// EnforceStaff requires a moderator-class account.
func (s *Service) EnforceStaff(ctx context.Context, w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	return s.Enforce(ctx, w, r, user.ClassModerator)
}
