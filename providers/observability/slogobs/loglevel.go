package slogobs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below slog.LevelDebug and is filtered out unless asked for.
const LevelTrace = slog.LevelDebug - 4

// LookupLogLevel maps TRACE, DEBUG, INFO, WARN/WARNING and ERROR
// (case-insensitive) to a slog.Level.
func LookupLogLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace, true
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return 0, false
}

// ParseLogLevel is LookupLogLevel with INFO as the fallback. Unknown non-empty
// values print a warning to stderr.
func ParseLogLevel(level string) slog.Level {
	if l, ok := LookupLogLevel(level); ok {
		return l
	}
	if strings.TrimSpace(level) != "" {
		fmt.Fprintf(os.Stderr, "Warning: Unknown log level '%s', using INFO\n", level)
	}
	return slog.LevelInfo
}

// GetLogLevelFromEnv reads WASMCALC_LOG_LEVEL, then LOG_LEVEL, defaulting to INFO.
func GetLogLevelFromEnv() slog.Level {
	level := os.Getenv("WASMCALC_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		return slog.LevelInfo
	}
	return ParseLogLevel(level)
}

// LogLevelString returns the name used in log output for level.
func LogLevelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
