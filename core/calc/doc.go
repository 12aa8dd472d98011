// Package calc implements the arithmetic evaluator exposed to WebAssembly
// hosts. It maps two float64 operands and an [Operation] to a float64 result
// and reports anomalies through a host-provided [Console] instead of the
// return channel.
//
// The main entry points are [Calculate], which is total and never fails, and
// [Evaluator.Evaluate], which applies the configured [DivisionPolicy] and can
// surface [ErrDivisionByZero] to callers that opt into stricter handling.
// [Run] is the module initialization hook; hosts call it once on load.
//
// By default a zero divisor is masked: the result is 0.0 and a single
// diagnostic line is written to the console's error channel. Callers cannot
// tell a computed zero from a masked one by the return value alone.
package calc
