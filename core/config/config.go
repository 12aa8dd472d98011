package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/providers/observability/slogobs"
)

// Config holds the settings shared by every host.
type Config struct {
	DivisionPolicy calc.DivisionPolicy `env:"WASMCALC_DIVISION_POLICY" envDefault:"mask"`
	LogLevel       string              `env:"WASMCALC_LOG_LEVEL" envDefault:"INFO"`
	LogFormat      string              `env:"WASMCALC_LOG_FORMAT" envDefault:"compact"`
}

// Default returns the configuration used when no environment is available.
func Default() Config {
	return Config{
		DivisionPolicy: calc.PolicyMask,
		LogLevel:       "INFO",
		LogFormat:      string(slogobs.FormatCompact),
	}
}

// Load reads the given .env files (".env" when none are named), then parses
// the environment. Missing .env files are ignored; variables already set in
// the process environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", name, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the fields env tags cannot check on their own.
func (c Config) Validate() error {
	if _, err := calc.ParseDivisionPolicy(string(c.DivisionPolicy)); err != nil {
		return fmt.Errorf("WASMCALC_DIVISION_POLICY: %w", err)
	}
	if _, ok := slogobs.LookupLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("WASMCALC_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	if _, ok := slogobs.LookupFormat(c.LogFormat); !ok {
		return fmt.Errorf("WASMCALC_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return nil
}

// Level returns the configured log level, INFO when unset or invalid.
func (c Config) Level() slog.Level {
	if level, ok := slogobs.LookupLogLevel(c.LogLevel); ok {
		return level
	}
	return slog.LevelInfo
}

// Format returns the configured log format, compact when unset or invalid.
func (c Config) Format() slogobs.Format {
	return slogobs.ParseFormat(c.LogFormat)
}

// Observer builds the slog-backed provider described by c.
func (c Config) Observer(opts ...slogobs.Option) *slogobs.Observer {
	base := []slogobs.Option{
		slogobs.WithLevel(c.Level()),
		slogobs.WithFormat(c.Format()),
	}
	return slogobs.New(append(base, opts...)...)
}

// Evaluator builds an evaluator with c's division policy plus opts.
func (c Config) Evaluator(opts ...calc.Option) *calc.Evaluator {
	return calc.New(append([]calc.Option{calc.WithPolicy(c.DivisionPolicy)}, opts...)...)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
