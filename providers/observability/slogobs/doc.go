// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans and metric updates are written as debug-level log lines; counters and
// histograms also keep their running totals in memory so the native harness
// and tests can read them back. Output goes through [Handler], which renders
// compact, pretty or JSON lines. Format and level default to the
// WASMCALC_LOG_FORMAT and WASMCALC_LOG_LEVEL environment variables.
package slogobs
