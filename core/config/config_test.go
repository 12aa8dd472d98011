package config

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/providers/observability/slogobs"
)

var envKeys = []string{"WASMCALC_DIVISION_POLICY", "WASMCALC_LOG_LEVEL", "WASMCALC_LOG_FORMAT"}

// clearEnv unsets every key for the test and restores the previous values
// afterwards, including values a .env file loaded during the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("expected INFO, got %v", cfg.Level())
	}
	if cfg.Format() != slogobs.FormatCompact {
		t.Errorf("expected compact, got %v", cfg.Format())
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WASMCALC_DIVISION_POLICY", "ERROR")
	t.Setenv("WASMCALC_LOG_LEVEL", "trace")
	t.Setenv("WASMCALC_LOG_FORMAT", "json")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DivisionPolicy != calc.PolicyError {
		t.Errorf("expected error policy, got %q", cfg.DivisionPolicy)
	}
	if cfg.Level() != slogobs.LevelTrace {
		t.Errorf("expected TRACE, got %v", cfg.Level())
	}
	if cfg.Format() != slogobs.FormatJSON {
		t.Errorf("expected json, got %v", cfg.Format())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"policy", "WASMCALC_DIVISION_POLICY", "explode"},
		{"level", "WASMCALC_LOG_LEVEL", "LOUD"},
		{"format", "WASMCALC_LOG_FORMAT", "xml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load(missingEnvFile(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "parse env:") {
				t.Fatalf("expected parse env prefix, got %v", err)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("WASMCALC_LOG_FORMAT", "pretty")

	path := filepath.Join(t.TempDir(), ".env")
	content := "WASMCALC_DIVISION_POLICY=ieee\nWASMCALC_LOG_FORMAT=json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DivisionPolicy != calc.PolicyIEEE {
		t.Errorf("expected ieee policy from file, got %q", cfg.DivisionPolicy)
	}
	if cfg.Format() != slogobs.FormatPretty {
		t.Errorf("expected process env to win over file, got %v", cfg.Format())
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg struct {
		Port int `env:"WASMCALC_TEST_PORT" envDefault:"123"`
	}
	t.Setenv("WASMCALC_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestConfig_Evaluator(t *testing.T) {
	cfg := Default()
	cfg.DivisionPolicy = calc.PolicyError

	ev := cfg.Evaluator()
	if ev.Policy() != calc.PolicyError {
		t.Errorf("expected error policy, got %q", ev.Policy())
	}
}

// TestExitf_ExitsWithCode1 runs Exitf in a subprocess because os.Exit cannot
// be intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected output to contain %q, got %q", "fatal: something broke", string(out))
	}
}
