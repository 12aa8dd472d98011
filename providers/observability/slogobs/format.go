package slogobs

import (
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact is a single line with JSON attributes.
	// Example: 2025-11-03 10:40:35 DEBUG Evaluated operation → {"calc.operation":"Add"}
	FormatCompact Format = "compact"

	// FormatPretty prints each attribute on its own indented line.
	FormatPretty Format = "pretty"

	// FormatJSON is one JSON object per line.
	// Example: {"time":"2025-11-03T10:40:35","level":"DEBUG","msg":"Evaluated operation","calc.operation":"Add"}
	FormatJSON Format = "json"
)

// LookupFormat reports the Format named by s, ignoring case and surrounding space.
func LookupFormat(s string) (Format, bool) {
	switch Format(strings.TrimSpace(strings.ToLower(s))) {
	case FormatCompact:
		return FormatCompact, true
	case FormatPretty:
		return FormatPretty, true
	case FormatJSON:
		return FormatJSON, true
	}
	return "", false
}

// ParseFormat is LookupFormat with FormatCompact as the fallback.
func ParseFormat(s string) Format {
	if f, ok := LookupFormat(s); ok {
		return f
	}
	return FormatCompact
}

// GetFormatFromEnv reads WASMCALC_LOG_FORMAT, then LOG_FORMAT, defaulting to compact.
func GetFormatFromEnv() Format {
	for _, key := range []string{"WASMCALC_LOG_FORMAT", "LOG_FORMAT"} {
		if format := os.Getenv(key); format != "" {
			return ParseFormat(format)
		}
	}
	return FormatCompact
}

func (f Format) String() string {
	return string(f)
}
