package calculator

import (
	"context"
	"fmt"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/providers/tool"
)

// ToolName is the name the calculator tool is registered under.
const ToolName = "Calculator"

// Calculator adapts an evaluator to the tool function signature.
type Calculator struct {
	evaluator *calc.Evaluator
}

// NewCalculatorTool returns a [tool.Tool] that evaluates one operation with ev.
// A nil ev uses [calc.Default] at call time.
func NewCalculatorTool(ev *calc.Evaluator) *tool.Tool[Input, Output] {
	c := &Calculator{evaluator: ev}
	return tool.NewTool[Input, Output](
		ToolName,
		c.Calc,
		tool.WithDescription("Applies one arithmetic operation (add, subtract, multiply or divide) to two numbers."),
	)
}

// Calc applies req.Op to req.A and req.B. Op accepts every spelling
// [calc.ParseOperation] accepts. The evaluator's division policy decides what
// a zero divisor yields; under [calc.PolicyError] the error is returned.
//
// Example:
//
//	out, err := c.Calc(ctx, calculator.Input{A: 10, B: 4, Op: "div"})
//	fmt.Println(out.Result) // 2.5
func (c *Calculator) Calc(ctx context.Context, req Input) (Output, error) {
	op, err := calc.ParseOperation(req.Op)
	if err != nil {
		return Output{}, err
	}

	ev := c.evaluator
	if ev == nil {
		ev = calc.Default()
	}

	result, err := ev.Evaluate(ctx, req.A, req.B, op)
	if err != nil {
		return Output{}, fmt.Errorf("calculate %s: %w", op, err)
	}
	return Output{Result: result}, nil
}

// Input holds the two operands and the operation name.
type Input struct {
	A  float64 `json:"A"  jsonschema:"description=First operand,required"`
	B  float64 `json:"B"  jsonschema:"description=Second operand,required"`
	Op string  `json:"Op" jsonschema:"description=Operation name or symbol (case-insensitive),enum=Add,enum=Subtract,enum=Multiply,enum=Divide,enum=add,enum=sub,enum=subtract,enum=mul,enum=multiply,enum=div,enum=divide,enum=+,enum=-,enum=*,enum=/,required"`
}

// Output carries the computed result. Non-finite results (possible with
// [calc.PolicyIEEE] or NaN operands) cannot be encoded as JSON, so the tool
// call fails for them.
type Output struct {
	Result float64 `json:"result" jsonschema:"description=The result of the calculation"`
}
