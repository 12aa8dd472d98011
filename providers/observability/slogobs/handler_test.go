package slogobs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func newTestLogger(format Format, level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := NewHandler(&HandlerOptions{
		Format: format,
		Level:  level,
		Output: &buf,
	})
	return slog.New(handler), &buf
}

func TestHandler_Compact(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelDebug)
	logger.Info("Evaluated operation", "calc.operation", "Add", "calc.result", 9)

	output := buf.String()
	for _, want := range []string{" INFO ", "Evaluated operation", "→", `"calc.operation":"Add"`, `"calc.result":9`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestHandler_Pretty(t *testing.T) {
	logger, buf := newTestLogger(FormatPretty, slog.LevelDebug)
	logger.Info("Evaluated operation", "b", "second", "a", "first")

	output := buf.String()
	if !strings.Contains(output, "🟢") {
		t.Errorf("Expected info icon in output, got: %s", output)
	}
	first := strings.Index(output, "├─ a: first")
	last := strings.Index(output, "└─ b: second")
	if first < 0 || last < 0 || first > last {
		t.Errorf("Expected sorted tree lines, got: %s", output)
	}
}

func TestHandler_JSON(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.Warn("Division by zero", "calc.policy", "mask")

	output := buf.String()
	for _, want := range []string{`"level":"WARN"`, `"msg":"Division by zero"`, `"calc.policy":"mask"`, `"time":"`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %s in JSON output, got: %s", want, output)
		}
	}
}

// TestHandler_NonFiniteFloats verifies NaN and infinities do not break JSON
// rendering.
func TestHandler_NonFiniteFloats(t *testing.T) {
	for _, format := range []Format{FormatCompact, FormatJSON} {
		logger, buf := newTestLogger(format, slog.LevelDebug)
		logger.Info("Evaluated operation", "nan", math.NaN(), "inf", math.Inf(-1))

		output := buf.String()
		if strings.Contains(output, "json-error") {
			t.Errorf("%s: unexpected encoding failure: %s", format, output)
		}
		if !strings.Contains(output, `"nan":"NaN"`) || !strings.Contains(output, `"inf":"-Inf"`) {
			t.Errorf("%s: expected stringified non-finite values, got: %s", format, output)
		}
	}
}

func TestHandler_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelWarn)
	logger.Debug("Should not appear")
	logger.Info("Should not appear")
	logger.Warn("Should appear")

	output := buf.String()
	if strings.Contains(output, "Should not appear") {
		t.Errorf("Expected DEBUG and INFO to be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "Should appear") {
		t.Errorf("Expected WARN to appear, got: %s", output)
	}
}

func TestHandler_NoAttributes(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelDebug)
	logger.Info("Go Wasm Calculator Initialized.")

	output := buf.String()
	if strings.Contains(output, "→") || strings.Contains(output, "{}") {
		t.Errorf("Expected no attribute section, got: %s", output)
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.With("host.target", "native").WithGroup("calc").WithGroup("op").Info("grouped", "code", 3)

	output := buf.String()
	if !strings.Contains(output, `"host.target":"native"`) {
		t.Errorf("Expected handler attribute, got: %s", output)
	}
	if !strings.Contains(output, `"calc.op.code":3`) {
		t.Errorf("Expected group prefix in order, got: %s", output)
	}
}

type requestID int

func (id requestID) LogValue() slog.Value {
	return slog.StringValue(fmt.Sprintf("req-%d", int(id)))
}

func TestHandler_GroupAttrs(t *testing.T) {
	tests := []struct {
		name string
		log  func(*slog.Logger)
		want []string
	}{
		{
			name: "group attr",
			log:  func(l *slog.Logger) { l.Info("m", slog.Group("req", slog.Int("id", 7))) },
			want: []string{`"req.id":7`},
		},
		{
			name: "nested groups",
			log: func(l *slog.Logger) {
				l.Info("m", slog.Group("calc", slog.Group("op", slog.String("name", "Divide"))))
			},
			want: []string{`"calc.op.name":"Divide"`},
		},
		{
			name: "empty key inlines",
			log:  func(l *slog.Logger) { l.Info("m", slog.Group("", slog.Int("code", 3))) },
			want: []string{`"code":3`},
		},
		{
			name: "group under WithGroup",
			log:  func(l *slog.Logger) { l.WithGroup("host").Info("m", slog.Group("req", slog.Int("id", 1))) },
			want: []string{`"host.req.id":1`},
		},
		{
			name: "group in WithAttrs",
			log: func(l *slog.Logger) {
				l.WithGroup("host").With(slog.Group("", slog.String("target", "native"))).Info("m")
			},
			want: []string{`"host.target":"native"`},
		},
		{
			name: "log valuer resolved",
			log:  func(l *slog.Logger) { l.Info("m", slog.Any("id", requestID(9)), slog.Group("g", slog.Any("id", requestID(2)))) },
			want: []string{`"id":"req-9"`, `"g.id":"req-2"`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
			tc.log(logger)

			output := buf.String()
			for _, want := range tc.want {
				if !strings.Contains(output, want) {
					t.Errorf("Expected %s in output, got: %s", want, output)
				}
			}
			if strings.Contains(output, `"Key"`) {
				t.Errorf("Expected flattened attributes, got: %s", output)
			}
		})
	}
}

func TestHandler_EmptyGroupDropped(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.Info("m", slog.Group("empty"))

	if strings.Contains(buf.String(), "empty") {
		t.Errorf("Expected empty group to be dropped, got: %s", buf.String())
	}
}

func TestHandler_Enabled(t *testing.T) {
	handler := NewHandler(&HandlerOptions{Level: slog.LevelInfo, Output: &bytes.Buffer{}})

	ctx := context.Background()
	if handler.Enabled(ctx, slog.LevelDebug) {
		t.Error("Expected DEBUG to be disabled when level is INFO")
	}
	for _, level := range []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !handler.Enabled(ctx, level) {
			t.Errorf("Expected %v to be enabled when level is INFO", level)
		}
	}
}

func TestHandler_TraceLevel(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, LevelTrace)
	logger.Log(context.Background(), LevelTrace, "Trace message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "TRACE") || !strings.Contains(output, "Trace message") {
		t.Errorf("Expected TRACE line, got: %s", output)
	}
}

func TestHandler_Colors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatCompact, Output: &buf, Colors: true}))
	logger.Error("boom")

	if !strings.Contains(buf.String(), colorRed) || !strings.Contains(buf.String(), colorReset) {
		t.Errorf("Expected ANSI colors, got: %q", buf.String())
	}
}
