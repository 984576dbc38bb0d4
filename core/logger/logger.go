package logger

import (
	"io"
	"log/slog"
	"os"
)

// config holds logger construction settings.
type config struct {
	level   slog.Level
	json    bool
	output  io.Writer
	attrs   []slog.Attr
	appName string
}

// Option is a functional option for configuring the logger.
type Option func(*config)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSONFormatter switches output to JSON, the format for log shippers.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithTextFormatter switches output to human-readable text.
func WithTextFormatter() Option {
	return func(c *config) {
		c.json = false
	}
}

// WithOutput redirects log output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithAttr attaches a static attribute to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level with an app name.
func WithDevelopment(appName string) Option {
	return func(c *config) {
		c.appName = appName
		c.json = false
		c.level = slog.LevelDebug
	}
}

// WithProduction configures JSON output at info level with an app name.
func WithProduction(appName string) Option {
	return func(c *config) {
		c.appName = appName
		c.json = true
		c.level = slog.LevelInfo
	}
}

// New creates a slog.Logger configured by the given options.
// With no options it logs text at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.json {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	attrs := cfg.attrs
	if cfg.appName != "" {
		attrs = append([]slog.Attr{slog.String("app", cfg.appName)}, attrs...)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}
