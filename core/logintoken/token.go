package logintoken

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

const (
	// seriesBytes is the entropy of a series identifier (32 hex chars).
	seriesBytes = 16
	// tokenEntropyBytes is the raw entropy hashed into a token value.
	tokenEntropyBytes = 128
)

// Token is one durable persistent-login grant row. A row is valid for
// exactly one use: consuming it deletes the row and issues a replacement
// under the same series, so a stale (token, series) pair reappearing later
// is the classic signal of a stolen remember-me cookie.
type Token struct {
	ID     int64
	UserID uuid.UUID
	// Series is the stable identifier of one "device" grant. It survives
	// rotation, which is what lets replay detection correlate a chain of
	// single-use tokens.
	Series string
	// Value is the rotating secret, a hex SHA-256 digest of fresh random
	// bytes. Never reused, never derived from prior values.
	Value string
	// IPIssued is the client address at issuance of this row.
	IPIssued string
	// IPLast is the client address most recently associated with the
	// grant; rotation carries it forward into the replacement row.
	IPLast    string
	CreatedAt time.Time
}

// CookiePayload is the client-held half of a grant, serialized to JSON in
// the login-token cookie. Field names match the wire format: "t" for the
// rotating token, "ts" for the series.
type CookiePayload struct {
	Token  string `json:"t"`
	Series string `json:"ts"`
}

// Valid reports whether both fields are present. A payload missing either
// half cannot match any stored row and must be treated as malformed.
func (p CookiePayload) Valid() bool {
	return p.Token != "" && p.Series != ""
}

// CookieName is the name of the client-side login-token cookie.
const CookieName = "login_tokens"

// newSeries generates a fresh series identifier from the random source.
func newSeries(rand io.Reader) (string, error) {
	b := make([]byte, seriesBytes)
	if _, err := io.ReadFull(rand, b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return hex.EncodeToString(b), nil
}

// newTokenValue generates a fresh single-use token value. The random input
// is hashed so the stored value leaks nothing about the generator state
// even if the random source is ever compromised retroactively.
func newTokenValue(rand io.Reader) (string, error) {
	b := make([]byte, tokenEntropyBytes)
	if _, err := io.ReadFull(rand, b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
