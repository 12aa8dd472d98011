package calc

import "testing"

func TestParseDivisionPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected DivisionPolicy
	}{
		{"", PolicyMask},
		{"mask", PolicyMask},
		{"ERROR", PolicyError},
		{" ieee ", PolicyIEEE},
	}

	for _, tc := range tests {
		got, err := ParseDivisionPolicy(tc.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		if got != tc.expected {
			t.Errorf("%q: expected %q, got %q", tc.input, tc.expected, got)
		}
	}

	if _, err := ParseDivisionPolicy("panic"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestDivisionPolicy_UnmarshalText(t *testing.T) {
	var p DivisionPolicy
	if err := p.UnmarshalText([]byte("error")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != PolicyError {
		t.Errorf("expected %q, got %q", PolicyError, p)
	}

	if err := p.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error for unknown policy")
	}
	if p != PolicyError {
		t.Errorf("failed unmarshal must not change the value, got %q", p)
	}
}
