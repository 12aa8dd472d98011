// Command calc runs one calculator evaluation natively, with the console
// routed through structured logging. It reads WASMCALC_* settings from the
// environment and an optional .env file.
//
//	calc -a 6 -b 3 -op div
//	calc -json '{A: 6, B: 3, Op: "mul"}'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/core/config"
	"github.com/leofalp/wasmcalc/providers/console"
	"github.com/leofalp/wasmcalc/providers/observability"
	"github.com/leofalp/wasmcalc/providers/observability/slogobs"
	"github.com/leofalp/wasmcalc/providers/tool/calculator"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("calc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	a := flags.Float64("a", 0, "first operand")
	b := flags.Float64("b", 0, "second operand")
	opName := flags.String("op", "add", "operation: add, sub, mul, div or + - * /")
	jsonInput := flags.String("json", "", "calculator tool input, e.g. '{\"A\":6,\"B\":3,\"Op\":\"div\"}'")
	envFile := flags.String("env", ".env", "optional .env file")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return 1
	}

	observer := cfg.Observer(slogobs.WithOutput(stderr))
	ev := cfg.Evaluator(
		calc.WithConsole(console.Observer(observer)),
		calc.WithObserver(observer),
	)
	ev.Run()

	if *jsonInput != "" {
		ctx = observability.ContextWithObserver(ctx, observer)
		out, err := calculator.NewCalculatorTool(ev).Call(ctx, *jsonInput)
		if err != nil {
			fmt.Fprintf(stderr, "calc: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0
	}

	op, err := calc.ParseOperation(*opName)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return 1
	}

	result, err := ev.Evaluate(ctx, *a, *b, op)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%g\n", result)
	return 0
}
