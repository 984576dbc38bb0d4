package auth

import "time"

// Config provides environment-based configuration for the auth service.
type Config struct {
	// SessionCookieName is the name of the session cookie.
	SessionCookieName string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`

	// RememberTTL is the lifetime of the persistent login-token cookie.
	// Token rows never expire server-side; this client-side expiry is the
	// only clock on a grant.
	RememberTTL time.Duration `env:"AUTH_REMEMBER_TTL" envDefault:"720h"` // 30 days

	// SecureCookies restricts both cookies to HTTPS. Off by default so
	// local development works; production must enable it.
	SecureCookies bool `env:"AUTH_SECURE_COOKIES" envDefault:"false"`

	// FingerprintCheck binds sessions to the origin fingerprint. The check
	// breaks under shared or rotating addresses, so deployments serving
	// such audiences can switch it off.
	FingerprintCheck bool `env:"AUTH_FINGERPRINT_CHECK" envDefault:"true"`

	// SignupAllowed gates registration.
	SignupAllowed bool `env:"AUTH_SIGNUP_ALLOWED" envDefault:"true"`

	// SignupDefaultEnabled controls whether fresh accounts can log in
	// immediately or wait for manual activation.
	SignupDefaultEnabled bool `env:"AUTH_SIGNUP_DEFAULT_ENABLED" envDefault:"false"`

	// EmailPasswordOnSignup includes the plaintext password in the signup
	// email. Off unless the deployment explicitly wants it.
	EmailPasswordOnSignup bool `env:"AUTH_EMAIL_PASSWORD_ON_SIGNUP" envDefault:"false"`

	// Team name length bounds enforced at registration.
	TeamNameMinLength int `env:"AUTH_TEAM_NAME_MIN_LENGTH" envDefault:"3"`
	TeamNameMaxLength int `env:"AUTH_TEAM_NAME_MAX_LENGTH" envDefault:"50"`

	// SiteName and SiteURL appear in outbound signup email.
	SiteName string `env:"SITE_NAME" envDefault:""`
	SiteURL  string `env:"SITE_URL" envDefault:""`

	// LogoutRedirectURL is where terminated requests are sent.
	LogoutRedirectURL string `env:"AUTH_LOGOUT_REDIRECT_URL" envDefault:"/"`
}
