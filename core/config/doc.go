// Package config provides type-safe environment variable loading with
// per-type caching.
//
// The package loads .env files on first use and parses environment
// variables into struct fields via caarlos0/env tags:
//
//	type SessionConfig struct {
//		TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
//		CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// or panic on failure during startup
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once per process; later loads of the
// same type return the cached value.
package config
