//go:build wasip1

package main

import (
	"unsafe"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/core/config"
)

//go:wasmimport env console_log
func consoleLog(ptr unsafe.Pointer, size uint32)

//go:wasmimport env console_error
func consoleError(ptr unsafe.Pointer, size uint32)

// hostConsole forwards messages to the host as (pointer, length) pairs into
// linear memory. The host must copy the bytes before returning.
type hostConsole struct{}

func (hostConsole) Log(msg string) {
	consoleLog(unsafe.Pointer(unsafe.StringData(msg)), uint32(len(msg)))
}

func (hostConsole) Error(msg string) {
	consoleError(unsafe.Pointer(unsafe.StringData(msg)), uint32(len(msg)))
}

var evaluator = config.Default().Evaluator(calc.WithConsole(hostConsole{}))

//go:wasmexport calculate
func calculate(a, b float64, op int32) float64 {
	// Codes outside the enum are logged by the evaluator and yield NaN.
	return evaluator.Calculate(a, b, calc.Operation(op))
}

//go:wasmexport run
func run() {
	evaluator.Run()
}

// main is not called in reactor mode; the host calls run after _initialize.
func main() {}
