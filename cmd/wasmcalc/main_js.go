//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/core/config"
	"github.com/leofalp/wasmcalc/internal/jsbridge"
)

func main() {
	global := js.Global()

	ev := config.Default().Evaluator(calc.WithConsole(jsbridge.NewConsole(global)))
	calc.SetDefault(ev)

	ev.Run()
	jsbridge.Register(global, ev)

	// Keep the module alive so the registered callbacks stay valid.
	select {}
}
