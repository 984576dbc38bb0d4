// Package logintoken implements the persistent "remember me" login
// protocol: series-grouped, single-use, rotating secret tokens.
//
// # Protocol
//
// Each remember-me grant is a chain of rows sharing one long-lived series
// identifier. Only one row per chain exists at a time, holding the current
// single-use secret:
//
//	ISSUED ──consume──▶ CONSUMED (row deleted) ──reissue──▶ ISSUED (same series, new secret)
//	   │
//	   └──revoke──▶ gone (logout, no replacement)
//
// The client cookie carries {"t": token, "ts": series}. Redeeming it looks
// up and deletes the row atomically (DELETE ... RETURNING in the Postgres
// store), so a racing duplicate request observes "not found". A lookup
// miss is ambiguous by design: it is either a benign stale cookie or
// replay of a stolen one, and since the server cannot tell them apart the
// only safe reaction is full logout. Partial recovery is never attempted.
//
// # Usage
//
//	svc := logintoken.NewService(logintoken.NewPostgresStore(pool))
//
//	// Login with remember_me: start a new chain.
//	tok, err := svc.Issue(ctx, userID, "", clientIP)
//
//	// Silent re-login from cookie: one-time use plus reissue.
//	fresh, err := svc.Rotate(ctx, payload, clientIP)
//	if err != nil {
//		// fail closed: destroy session, clear cookies
//	}
//
//	// Logout.
//	_ = svc.Revoke(ctx, payload)
//
// Rows never expire server-side; the client cookie carries the expiry.
// Tests inject determinism via WithRand and WithClock.
package logintoken
