package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is returned by [Evaluator.Evaluate] under [PolicyError]
// when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// DivisionPolicy controls what happens when Divide receives a zero divisor.
type DivisionPolicy string

const (
	// PolicyMask returns 0.0 and writes one diagnostic line to the console.
	PolicyMask DivisionPolicy = "mask"

	// PolicyError returns ErrDivisionByZero to the caller and logs nothing.
	PolicyError DivisionPolicy = "error"

	// PolicyIEEE computes a / b, yielding ±Inf or NaN.
	PolicyIEEE DivisionPolicy = "ieee"
)

// ParseDivisionPolicy parses a policy name. The empty string selects PolicyMask.
func ParseDivisionPolicy(s string) (DivisionPolicy, error) {
	switch DivisionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyMask:
		return PolicyMask, nil
	case PolicyError:
		return PolicyError, nil
	case PolicyIEEE:
		return PolicyIEEE, nil
	}
	return "", fmt.Errorf("unknown division policy %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so policies can be decoded
// straight from environment variables.
func (p *DivisionPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseDivisionPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// String returns the policy name.
func (p DivisionPolicy) String() string {
	return string(p)
}
