package jsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/providers/tool"
	"github.com/leofalp/wasmcalc/providers/tool/calculator"
)

// ErrInvalidArguments is reported when calculate receives the wrong number
// of arguments or a non-number argument.
var ErrInvalidArguments = errors.New("invalid arguments")

// TypeNumber is the js.Type name of JavaScript numbers.
const TypeNumber = "number"

// CalculateArgs validates calculate's arguments, given as their js.Type names
// and values (values of non-number arguments are ignored), and decodes them.
func CalculateArgs(kinds []string, values []float64) (a, b float64, op calc.Operation, err error) {
	if len(kinds) < 3 || len(values) < 3 {
		return 0, 0, 0, fmt.Errorf("%w: calculate expects 3 arguments, got %d", ErrInvalidArguments, len(kinds))
	}
	for i, kind := range kinds[:3] {
		if kind != TypeNumber {
			return 0, 0, 0, fmt.Errorf("%w: calculate argument %d must be a number, got %s", ErrInvalidArguments, i, kind)
		}
	}
	op, err = OperationFromNumber(values[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return values[0], values[1], op, nil
}

// Calculate is the body of the JavaScript calculate function. Invalid
// arguments are reported on console's error channel and yield NaN.
func Calculate(ev *calc.Evaluator, console calc.Console, kinds []string, values []float64) float64 {
	a, b, op, err := CalculateArgs(kinds, values)
	if err != nil {
		console.Error("Error: " + err.Error())
		return math.NaN()
	}
	return ev.Calculate(a, b, op)
}

// OperationFromNumber converts a JavaScript number into an Operation.
// Fractional, non-finite and out-of-range values fail with
// [calc.ErrUnknownOperation].
func OperationFromNumber(v float64) (calc.Operation, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %v", calc.ErrUnknownOperation, v)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v", calc.ErrUnknownOperation, v)
	}
	return calc.OperationFromCode(int(v))
}

// OperationTable returns the Operation object in the shape wasm-bindgen
// gives numeric enums: name to code and code to name.
func OperationTable() map[string]any {
	table := make(map[string]any, 2*len(calc.Operations()))
	for _, op := range calc.Operations() {
		table[op.String()] = op.Code()
		table[strconv.Itoa(op.Code())] = op.String()
	}
	return table
}

// CallJSON runs the calculator tool and returns a plain object with
// "result" (a number, or nil on failure) and "error" (nil on success).
func CallJSON(ctx context.Context, t *tool.Tool[calculator.Input, calculator.Output], input string) map[string]any {
	raw, err := t.Call(ctx, input)
	if err != nil {
		return map[string]any{"result": nil, "error": err.Error()}
	}

	var out calculator.Output
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]any{"result": nil, "error": fmt.Sprintf("decode result: %v", err)}
	}
	return map[string]any{"result": out.Result, "error": nil}
}

// SchemaJSON returns the tool's input schema as a JSON string.
func SchemaJSON(t tool.GenericTool) (string, error) {
	data, err := json.Marshal(t.ToolInfo().Parameters)
	if err != nil {
		return "", fmt.Errorf("encode schema: %w", err)
	}
	return string(data), nil
}
