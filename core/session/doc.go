// Package session manages server-side authenticated sessions.
//
// A session exists only for a logged-in user and snapshots the account's
// privilege class and enabled flag at login time, plus the fingerprint of
// the network origin it was created from. The client holds an opaque token
// delivered via cookie; the token rotates on every refresh (Regenerate) so
// a fixated or leaked cookie value goes stale within one request, while
// the session ID stays stable for log correlation.
//
// Lifecycle:
//
//	sess, err := manager.Create(ctx, user, session.NewSessionParams{
//		Fingerprint: fp,
//		IP:          ip,
//	})
//
//	sess, err = manager.GetByToken(ctx, cookieToken) // ErrNotFound / ErrExpired
//	err = manager.Regenerate(ctx, &sess)             // rotate token, slide expiry
//	err = manager.Delete(ctx, sess.Token)            // logout
//
// Two stores are provided: RedisStore for production (native TTL eviction,
// shared across instances) and MemoryStore for tests. Regeneration is not
// locked across concurrent requests presenting the same cookie; the losing
// request simply finds its token gone and re-authenticates. This is a
// known limitation, accepted instead of a session-store lock.
package session
