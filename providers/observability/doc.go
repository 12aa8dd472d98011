// Package observability defines the tracing, metrics and logging interfaces
// used across wasmcalc, together with the attribute keys and metric names in
// semconv.go.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into one injectable
// dependency. A provider or an active [Span] can travel through a
// [context.Context] with [ContextWithObserver] and [ContextWithSpan].
// The slogobs subpackage supplies the default implementation.
package observability
