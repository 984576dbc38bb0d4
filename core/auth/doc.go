// Package auth ties the session, login-token, user and cookie layers into
// a complete authentication lifecycle for HTTP handlers.
//
// The service exposes five operations:
//
//   - Login verifies credentials and starts a session, optionally issuing
//     a persistent single-use login token ("remember me").
//   - Refresh advances authenticated state on each request: it rotates the
//     session token, verifies the fingerprint binding and silently
//     recovers a session from the login-token cookie when needed.
//   - Logout tears everything down and redirects; every step is idempotent.
//   - Enforce gates protected handlers on a minimum privilege class.
//   - Register creates accounts with validation, duplicate checks and a
//     confirmation email.
//
// Security failures fail closed. A replayed or tampered login token, a
// fingerprint mismatch or an orphaned grant all end in a forced logout,
// and the consumed token is never reissued. The refresh outcome tells the
// caller whether the response was already written:
//
//	sess, outcome := svc.Refresh(ctx, w, r)
//	switch outcome {
//	case auth.RefreshTerminated:
//	    return // logout and redirect already sent
//	case auth.RefreshAnonymous:
//	    // render public page
//	case auth.RefreshActive:
//	    // sess is valid, cookie rotated
//	}
//
// Wiring:
//
//	svc := auth.NewService(cfg, sessions, tokens, users, cookies,
//	    auth.WithIPLog(ips),
//	    auth.WithEmailSender(sender),
//	    auth.WithLogger(log),
//	)
package auth
