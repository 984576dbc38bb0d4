package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Warn("msg", logger.Error(err)) without explicit
// nil checks, following the principle of making zero values useful.

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a discrete occurrence, e.g. "login" or "token_replay".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// SecurityEvent marks a record as a security exception. These records are
// the audit trail for fail-closed decisions, so the key is stable.
func SecurityEvent(name string) slog.Attr {
	return slog.String("security_event", name)
}

// UserID attaches the acting user's identifier.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// SessionID attaches the session identifier.
func SessionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("session_id", id)
}

// ClientIP attaches the request origin address.
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// TokenSeries attaches a persistent-login token series. Series identifiers
// are not secret; the rotating token value must never be logged.
func TokenSeries(series string) slog.Attr {
	return slog.String("token_series", series)
}

// Email attaches an account email address.
func Email(email string) slog.Attr {
	return slog.String("email", email)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
