package slogobs

import (
	"io"
	"log/slog"
	"os"
)

// Option is a functional option for configuring the Observer.
type Option func(*config)

type config struct {
	format Format
	level  slog.Level
	output io.Writer
	colors bool
	logger *slog.Logger // bypasses the custom handler when set
}

func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput sets the writer logs go to. Defaults to os.Stderr so stdout
// stays free for results.
func WithOutput(output io.Writer) Option {
	return func(c *config) {
		c.output = output
	}
}

// WithColors forces ANSI colors on or off for compact and pretty output.
func WithColors(enabled bool) Option {
	return func(c *config) {
		c.colors = enabled
	}
}

// WithLogger uses an existing slog.Logger. It takes precedence over every
// other option.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func defaultConfig() *config {
	return &config{
		format: GetFormatFromEnv(),
		level:  GetLogLevelFromEnv(),
		output: os.Stderr,
	}
}

func applyOptions(opts ...Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
