// Package cookie provides HTTP cookie management with HMAC signing, key
// rotation, and JSON payloads.
//
// The Manager signs cookie values with HMAC-SHA256 so the server can detect
// client-side tampering. Multiple secrets are supported for zero-downtime
// key rotation: new cookies are signed with the first secret, verification
// tries every secret in order.
//
// Basic usage:
//
//	manager, err := cookie.New([]string{"your-32-character-secret-key-here"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Signed value (tamper-evident)
//	err = manager.SetSigned(w, "session", token, cookie.WithMaxAge(86400))
//	token, err := manager.GetSigned(r, "session")
//
//	// Structured payload
//	err = manager.SetJSON(w, "login_tokens", payload)
//	err = manager.GetJSON(r, "login_tokens", &payload)
//
//	// Removal: empty value, expiry in the past
//	manager.Delete(w, "session")
//
// Defaults are secure (Path=/, HttpOnly, SameSite=Lax) and can be adjusted
// per call with functional options or globally via Config/NewFromConfig,
// which reads COOKIE_* environment variables.
package cookie
