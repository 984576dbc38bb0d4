package logintoken

import "errors"

var (
	// ErrNotFound is returned when no row matches a (token, series) pair.
	// The server cannot distinguish a benign cause (row already consumed,
	// grant revoked) from replay of a stolen cookie, so callers must fail
	// closed: destroy the session and clear client state.
	ErrNotFound = errors.New("login token not found")

	// ErrTokenGeneration is returned when the random source fails.
	ErrTokenGeneration = errors.New("failed to generate login token")

	// ErrMalformedCookie is returned when the login-token cookie payload
	// cannot be decoded or is missing a field.
	ErrMalformedCookie = errors.New("malformed login token cookie")
)
