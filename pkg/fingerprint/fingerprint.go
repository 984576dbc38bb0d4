package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/dmitrymomot/authkit/pkg/clientip"
)

const (
	fingerprintVersion = "v1:"
	// fingerprintHashLen uses 16 bytes (128 bits), enough for a binding
	// signal while halving storage compared to the full SHA-256 output.
	fingerprintHashLen = 16
	// fingerprintTotalLen is 3 bytes ("v1:") + 32 bytes hex = 35 bytes.
	fingerprintTotalLen = 35
)

// Generate derives a session fingerprint from the request's network origin.
// Returns a version-prefixed string in format "v1:hash".
//
// The fingerprint is a one-way digest of the client IP address and is a
// weak signal: NAT, mobile networks, and rotating proxies change it for
// legitimate users. Treat it as defense-in-depth for detecting hijacked
// sessions, never as a security boundary on its own.
//
//	fp := fingerprint.Generate(r)                  // IP only (default)
//	fp := fingerprint.Generate(r, WithUserAgent()) // additionally bind the User-Agent
func Generate(r *http.Request, opts ...Option) string {
	o := applyOptions(opts...)

	components := []string{clientip.GetIP(r)}

	if o.includeUserAgent {
		if ua := r.UserAgent(); ua != "" {
			components = append(components, ua)
		}
	}

	// Join with a pipe delimiter to prevent ambiguity between component
	// boundaries in the hashed input.
	combined := strings.Join(components, "|")
	hash := sha256.Sum256([]byte(combined))

	return fingerprintVersion + hex.EncodeToString(hash[:fingerprintHashLen])
}

// Validate compares the current request's fingerprint with a stored one.
// Returns nil on match, ErrMismatch on divergence, and ErrInvalidFingerprint
// when the stored value is not a well-formed "v1:hash" string.
//
// Use the same options that produced the stored fingerprint.
func Validate(r *http.Request, stored string, opts ...Option) error {
	if !strings.HasPrefix(stored, fingerprintVersion) || len(stored) != fingerprintTotalLen {
		return ErrInvalidFingerprint
	}

	if Generate(r, opts...) == stored {
		return nil
	}

	return ErrMismatch
}
