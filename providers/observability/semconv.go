package observability

// Attribute keys, metric names and span names shared by the evaluator, the
// tool surface and the host bindings.

// --- Evaluator ---

const (
	AttrCalcOperation = "calc.operation"
	AttrCalcOperandA  = "calc.operand.a"
	AttrCalcOperandB  = "calc.operand.b"
	AttrCalcResult    = "calc.result"

	// AttrCalcPolicy is the division policy applied to a zero divisor.
	AttrCalcPolicy = "calc.policy"
)

const (
	// MetricCalcEvaluations counts every evaluation, tagged by operation.
	MetricCalcEvaluations = "calc.evaluations"

	// MetricCalcDivisionByZero counts zero divisors, tagged by policy.
	MetricCalcDivisionByZero = "calc.division_by_zero"
)

// --- Tool execution ---

const (
	AttrToolName     = "tool.name"
	AttrToolInput    = "tool.input"
	AttrToolOutput   = "tool.output"
	AttrToolDuration = "tool.duration"
	AttrToolError    = "tool.error"
)

const (
	EventToolExecutionStart = "tool.execution.start"
	EventToolExecutionEnd   = "tool.execution.end"
)

// --- Host bindings ---

const (
	// AttrHostTarget is the wasm target the module was built for ("js", "wasip1", "native").
	AttrHostTarget = "host.target"
)

// --- General ---

const (
	AttrError             = "error"
	AttrStatus            = "status"
	AttrStatusDescription = "status_description"
)

// --- Span names ---

const (
	SpanToolCall = "tool.call"
)
