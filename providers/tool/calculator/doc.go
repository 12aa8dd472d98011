// Package calculator exposes a [calc.Evaluator] as a JSON tool. Hosts send
// {"A": 6, "B": 3, "Op": "div"} and receive {"result": 2}.
//
// The main entry point is [NewCalculatorTool]. The underlying function is
// also available as [Calculator.Calc] for direct invocation.
package calculator
