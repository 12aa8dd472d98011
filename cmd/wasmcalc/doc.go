// Command wasmcalc is the calculator WebAssembly module.
//
// Browser build, exposing calculate, Operation, calculateJSON and
// calculatorSchema on globalThis:
//
//	GOOS=js GOARCH=wasm go build -o web/wasmcalc.wasm ./cmd/wasmcalc
//
// Reactor build for WASI hosts, exporting calculate(f64, f64, i32) f64 and
// run() and importing env.console_log and env.console_error:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o wasmcalc.wasm ./cmd/wasmcalc
package main
