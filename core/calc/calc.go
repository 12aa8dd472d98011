package calc

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/leofalp/wasmcalc/providers/observability"
)

const (
	// MsgInitialized is the line [Run] writes when the module is loaded.
	MsgInitialized = "Go Wasm Calculator Initialized."

	// MsgDivisionByZero is the diagnostic written when a zero divisor is masked.
	MsgDivisionByZero = "Error: Division by zero!"
)

// Evaluator computes arithmetic results and reports anomalies to a Console.
// It holds no mutable state after construction, so a single instance may be
// shared freely between goroutines.
type Evaluator struct {
	console  Console
	policy   DivisionPolicy
	observer observability.Provider
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithConsole sets the sink used for the init line and diagnostics.
// A nil console leaves the default discard sink in place.
func WithConsole(console Console) Option {
	return func(e *Evaluator) {
		if console != nil {
			e.console = console
		}
	}
}

// WithPolicy sets the division-by-zero policy. Unknown policies fall back to
// PolicyMask at evaluation time.
func WithPolicy(policy DivisionPolicy) Option {
	return func(e *Evaluator) {
		e.policy = policy
	}
}

// WithObserver attaches an observability provider. Evaluations then update
// the calc.evaluations and calc.division_by_zero counters and emit a debug log.
func WithObserver(observer observability.Provider) Option {
	return func(e *Evaluator) {
		e.observer = observer
	}
}

// New returns an Evaluator. Without options it discards console output and
// masks division by zero.
//
// Example:
//
//	ev := calc.New(
//	    calc.WithConsole(console.Writer(os.Stdout, os.Stderr)),
//	    calc.WithPolicy(calc.PolicyError),
//	)
//	_, err := ev.Evaluate(ctx, 5, 0, calc.Divide) // errors.Is(err, calc.ErrDivisionByZero)
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		console: discardConsole{},
		policy:  PolicyMask,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the configured division policy.
func (e *Evaluator) Policy() DivisionPolicy {
	return e.policy
}

// Run is the module initialization hook. It writes [MsgInitialized] to the
// console's log channel. Hosts call it once per module load.
func (e *Evaluator) Run() {
	e.console.Log(MsgInitialized)
}

// Calculate returns the result of applying op to a and b. It never fails:
// errors reported by [Evaluator.Evaluate] are dropped and the sentinel result
// (0.0 for a zero divisor, NaN for an unknown operation) is returned.
func (e *Evaluator) Calculate(a, b float64, op Operation) float64 {
	result, _ := e.Evaluate(context.Background(), a, b, op)
	return result
}

// Evaluate applies op to a and b under the configured division policy.
//
// The returned error is non-nil only for an operation outside the enum
// ([ErrUnknownOperation], result NaN) or for a zero divisor under
// [PolicyError] ([ErrDivisionByZero], result 0).
func (e *Evaluator) Evaluate(ctx context.Context, a, b float64, op Operation) (float64, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		result float64
		err    error
	)
	switch op {
	case Add:
		result = a + b
	case Subtract:
		result = a - b
	case Multiply:
		result = a * b
	case Divide:
		result, err = e.divide(ctx, a, b)
	default:
		e.console.Error(fmt.Sprintf("Error: Unknown operation %d", int(op)))
		result = math.NaN()
		err = fmt.Errorf("%w: code %d", ErrUnknownOperation, int(op))
	}

	e.observe(ctx, a, b, op, result, err)
	return result, err
}

func (e *Evaluator) divide(ctx context.Context, a, b float64) (float64, error) {
	// Exact comparison; -0.0 is also a zero divisor. NaN falls through.
	if b != 0 {
		return a / b, nil
	}

	if e.observer != nil {
		e.observer.Counter(observability.MetricCalcDivisionByZero).Add(ctx, 1,
			observability.String(observability.AttrCalcPolicy, e.policy.String()),
		)
	}

	switch e.policy {
	case PolicyError:
		return 0, ErrDivisionByZero
	case PolicyIEEE:
		return a / b, nil
	default:
		e.console.Error(MsgDivisionByZero)
		return 0, nil
	}
}

func (e *Evaluator) observe(ctx context.Context, a, b float64, op Operation, result float64, err error) {
	if e.observer == nil {
		return
	}

	e.observer.Counter(observability.MetricCalcEvaluations).Add(ctx, 1,
		observability.String(observability.AttrCalcOperation, op.String()),
	)

	attrs := []observability.Attribute{
		observability.String(observability.AttrCalcOperation, op.String()),
		observability.Float64(observability.AttrCalcOperandA, a),
		observability.Float64(observability.AttrCalcOperandB, b),
		observability.Float64(observability.AttrCalcResult, result),
	}
	if err != nil {
		attrs = append(attrs, observability.Error(err))
	}
	e.observer.Debug(ctx, "Evaluated operation", attrs...)
}

var defaultEvaluator atomic.Pointer[Evaluator]

func init() {
	defaultEvaluator.Store(New())
}

// Default returns the evaluator used by the package-level functions.
func Default() *Evaluator {
	return defaultEvaluator.Load()
}

// SetDefault replaces the evaluator used by the package-level functions.
// A nil evaluator is ignored.
func SetDefault(e *Evaluator) {
	if e != nil {
		defaultEvaluator.Store(e)
	}
}

// Calculate calls [Evaluator.Calculate] on the default evaluator.
func Calculate(a, b float64, op Operation) float64 {
	return Default().Calculate(a, b, op)
}

// Run calls [Evaluator.Run] on the default evaluator.
func Run() {
	Default().Run()
}
