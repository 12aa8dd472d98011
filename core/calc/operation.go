package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned when an operation tag or name does not map
// to one of the supported variants.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation selects one of the four supported arithmetic actions. The integer
// values are stable: hosts pass them across the wasm boundary as plain numbers.
type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

var operationNames = [...]string{
	Add:      "Add",
	Subtract: "Subtract",
	Multiply: "Multiply",
	Divide:   "Divide",
}

// Operations returns every variant in code order.
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// Valid reports whether op is one of the declared variants.
func (op Operation) Valid() bool {
	return op >= Add && op <= Divide
}

// Code returns the integer tag used at the host boundary.
func (op Operation) Code() int {
	return int(op)
}

// String returns the variant name (e.g. "Add"), or "Operation(n)" for values
// outside the enum.
func (op Operation) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return operationNames[op]
}

// OperationFromCode converts a boundary integer tag into an Operation.
func OperationFromCode(code int) (Operation, error) {
	op := Operation(code)
	if !op.Valid() {
		return 0, fmt.Errorf("%w: code %d", ErrUnknownOperation, code)
	}
	return op, nil
}

// ParseOperation converts a textual operation into an Operation. It accepts
// the variant names, the short forms "add", "sub", "mul", "div" and the
// symbols "+", "-", "*", "/". Matching ignores case and surrounding space.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return Add, nil
	case "subtract", "sub", "-":
		return Subtract, nil
	case "multiply", "mul", "*":
		return Multiply, nil
	case "divide", "div", "/":
		return Divide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}
