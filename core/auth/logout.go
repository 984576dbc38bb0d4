package auth

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/logintoken"
)

// Logout destroys the server-side session, revokes the presented login
// token, clears both cookies and redirects to the configured URL. Every
// step is idempotent, so the method is safe to call on requests that
// were never authenticated.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if token, err := s.cookies.GetSigned(r, s.cfg.SessionCookieName); err == nil {
		if err := s.sessions.Delete(ctx, token); err != nil {
			s.log.WarnContext(ctx, "failed to delete session",
				logger.Component("auth"), logger.Error(err))
		}
	}

	var payload logintoken.CookiePayload
	if err := s.cookies.GetJSON(r, logintoken.CookieName, &payload); err == nil && payload.Valid() {
		if err := s.tokens.Revoke(ctx, payload); err != nil {
			s.log.WarnContext(ctx, "failed to revoke login token",
				logger.Component("auth"), logger.TokenSeries(payload.Series), logger.Error(err))
		}
	}

	s.cookies.Delete(w, s.cfg.SessionCookieName)
	s.cookies.Delete(w, logintoken.CookieName)

	http.Redirect(w, r, s.cfg.LogoutRedirectURL, http.StatusSeeOther)
}
