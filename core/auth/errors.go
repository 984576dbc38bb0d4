package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/logintoken"
	"github.com/dmitrymomot/authkit/pkg/fingerprint"
)

var (
	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. Deliberately the same error for both
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled is returned on login when the account exists and
	// the password matches but the account is not enabled.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrRegistrationClosed is returned by Register when signup is off.
	ErrRegistrationClosed = errors.New("registration is closed")

	// ErrDuplicateAccount is returned by Register when the email or team
	// name is already taken.
	ErrDuplicateAccount = errors.New("email or team name already registered")
)

// Security-kind errors are resolved internally by forced logout, never
// returned to handlers. Aliased here so log consumers and tests can
// errors.Is against one package.
var (
	ErrMissingCookie         = cookie.ErrCookieNotFound
	ErrMalformedCookie       = logintoken.ErrMalformedCookie
	ErrTokenNotFound         = logintoken.ErrNotFound
	ErrFingerprintMismatch   = fingerprint.ErrMismatch
	ErrInsufficientPrivilege = errors.New("insufficient privilege class")
)

// ValidationError reports a rejected registration or login field. The
// message is safe to show to the end user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
