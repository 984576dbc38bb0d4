package fingerprint

import "errors"

// options configures fingerprint generation behavior.
type options struct {
	// includeUserAgent additionally mixes the User-Agent header into the
	// digest. Browser updates rotate User-Agent strings, so this tightens
	// the binding at the cost of more false positives.
	// Default: false
	includeUserAgent bool
}

// Option is a functional option for configuring fingerprint generation.
type Option func(*options)

// WithUserAgent includes the User-Agent header in the fingerprint.
func WithUserAgent() Option {
	return func(o *options) {
		o.includeUserAgent = true
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validation errors that can be checked with errors.Is()
var (
	// ErrInvalidFingerprint indicates the stored fingerprint has invalid format.
	ErrInvalidFingerprint = errors.New("invalid fingerprint format")

	// ErrMismatch indicates the fingerprint doesn't match the current request.
	// This could indicate a session hijacking attempt or a legitimate change
	// of the client's network origin.
	ErrMismatch = errors.New("fingerprint mismatch")
)
