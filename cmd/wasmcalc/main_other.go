//go:build !(js && wasm) && !wasip1

package main

import "github.com/leofalp/wasmcalc/core/config"

func main() {
	config.Exitf("wasmcalc must be built for GOOS=js GOARCH=wasm or GOOS=wasip1 GOARCH=wasm; use ./cmd/calc for a native run")
}
