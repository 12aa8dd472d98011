//go:build js && wasm

package jsbridge

import (
	"context"
	"syscall/js"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/providers/tool/calculator"
)

// Console writes to the JavaScript console object.
type Console struct {
	console js.Value
}

var _ calc.Console = Console{}

// NewConsole binds global.console.
func NewConsole(global js.Value) Console {
	return Console{console: global.Get("console")}
}

// Log writes msg with console.log.
func (c Console) Log(msg string) {
	c.console.Call("log", msg)
}

// Error writes msg with console.error.
func (c Console) Error(msg string) {
	c.console.Call("error", msg)
}

// Register installs the calculator globals on global, usually js.Global().
// The returned function releases the installed callbacks.
func Register(global js.Value, ev *calc.Evaluator) (release func()) {
	if ev == nil {
		ev = calc.Default()
	}
	console := NewConsole(global)
	calcTool := calculator.NewCalculatorTool(ev)

	calculate := js.FuncOf(func(_ js.Value, args []js.Value) any {
		kinds := make([]string, len(args))
		values := make([]float64, len(args))
		for i, arg := range args {
			kinds[i] = arg.Type().String()
			if arg.Type() == js.TypeNumber {
				values[i] = arg.Float()
			}
		}
		return Calculate(ev, console, kinds, values)
	})

	calculateJSON := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 || args[0].Type() != js.TypeString {
			return map[string]any{"result": nil, "error": "calculateJSON expects a JSON string"}
		}
		return CallJSON(context.Background(), calcTool, args[0].String())
	})

	calculatorSchema := js.FuncOf(func(js.Value, []js.Value) any {
		schema, err := SchemaJSON(calcTool)
		if err != nil {
			console.Error("Error: " + err.Error())
			return js.Null()
		}
		return schema
	})

	operation := js.Global().Get("Object").Call("freeze", js.ValueOf(OperationTable()))

	global.Set("calculate", calculate)
	global.Set("calculateJSON", calculateJSON)
	global.Set("calculatorSchema", calculatorSchema)
	global.Set("Operation", operation)

	return func() {
		calculate.Release()
		calculateJSON.Release()
		calculatorSchema.Release()
	}
}
