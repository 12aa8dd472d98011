package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leofalp/wasmcalc/core/calc"
)

func runCalc(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	args = append([]string{"-env", filepath.Join(t.TempDir(), "none.env")}, args...)

	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{name: "add", args: []string{"-a", "6", "-b", "3", "-op", "add"}, wantOut: "9\n"},
		{name: "subtract", args: []string{"-a", "6", "-b", "3", "-op", "-"}, wantOut: "3\n"},
		{name: "multiply", args: []string{"-a", "6", "-b", "3", "-op", "mul"}, wantOut: "18\n"},
		{name: "divide", args: []string{"-a", "6", "-b", "3", "-op", "div"}, wantOut: "2\n"},
		{name: "negative operand", args: []string{"-a", "-7.5", "-b", "2.5", "-op", "add"}, wantOut: "-5\n"},
		{name: "json input", args: []string{"-json", "{A: 6, B: 3, Op: 'mul'}"}, wantOut: "{\"result\":18}\n"},
		{name: "unknown op", args: []string{"-op", "pow"}, wantCode: 1},
		{name: "bad flag", args: []string{"-x"}, wantCode: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCalc(t, tc.args...)
			if code != tc.wantCode {
				t.Fatalf("expected exit %d, got %d (stderr: %s)", tc.wantCode, code, errOut)
			}
			if tc.wantOut != "" && out != tc.wantOut {
				t.Errorf("expected stdout %q, got %q", tc.wantOut, out)
			}
		})
	}
}

func TestRun_LogsInitialization(t *testing.T) {
	_, _, errOut := runCalc(t, "-a", "1", "-b", "1")
	if !strings.Contains(errOut, calc.MsgInitialized) {
		t.Errorf("expected %q on stderr, got %q", calc.MsgInitialized, errOut)
	}
}

func TestRun_DivisionByZero(t *testing.T) {
	code, out, errOut := runCalc(t, "-a", "5", "-b", "0", "-op", "/")
	if code != 0 {
		t.Fatalf("expected exit 0 under mask policy, got %d", code)
	}
	if out != "0\n" {
		t.Errorf("expected 0, got %q", out)
	}
	if !strings.Contains(errOut, calc.MsgDivisionByZero) {
		t.Errorf("expected division diagnostic on stderr, got %q", errOut)
	}
}

func TestRun_DivisionByZeroErrorPolicy(t *testing.T) {
	t.Setenv("WASMCALC_DIVISION_POLICY", "error")

	code, out, errOut := runCalc(t, "-a", "5", "-b", "0", "-op", "/")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out != "" {
		t.Errorf("expected no result on stdout, got %q", out)
	}
	if !strings.Contains(errOut, calc.ErrDivisionByZero.Error()) {
		t.Errorf("expected error on stderr, got %q", errOut)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("WASMCALC_LOG_FORMAT", "xml")

	code, _, errOut := runCalc(t, "-a", "1", "-b", "2")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "parse env:") {
		t.Errorf("expected parse env error, got %q", errOut)
	}
}
