// Package jsbridge exposes the calculator to JavaScript when built with
// GOOS=js GOARCH=wasm.
//
// [Register] installs these globals:
//
//	calculate(a, b, op)   -> number, op is an Operation code
//	Operation             -> {Add: 0, Subtract: 1, Multiply: 2, Divide: 3, 0: "Add", ...}
//	calculateJSON(json)   -> {result, error}
//	calculatorSchema()    -> JSON Schema of the calculateJSON input
//
// Argument decoding lives in build-independent files so it can be tested
// natively.
package jsbridge
