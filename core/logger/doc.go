// Package logger provides structured logging built on Go's standard slog
// package: a configurable constructor plus attribute helpers for the
// authentication domain.
//
// Create loggers with functional options:
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "auth")),
//	)
//
// The attribute helpers keep key names consistent across the codebase and
// are nil-safe, so logging code needs no conditional plumbing:
//
//	log.Warn("persistent login token replayed",
//		logger.SecurityEvent("token_replay"),
//		logger.TokenSeries(series),
//		logger.ClientIP(ip),
//	)
//
// Security events form the audit trail for every fail-closed decision the
// auth subsystem makes; handlers and monitoring can filter on the
// "security_event" key.
package logger
