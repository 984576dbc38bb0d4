package session

import "time"

// Config provides environment-based configuration for the session manager.
type Config struct {
	// TTL is the session time-to-live; each refresh slides the expiry.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
}

// NewManagerFromConfig creates a session manager from configuration.
func NewManagerFromConfig(cfg Config, store Store) *Manager {
	return NewManager(store, cfg.TTL)
}
