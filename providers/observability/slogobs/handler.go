package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Handler is a slog.Handler that renders compact, pretty or JSON lines.
type Handler struct {
	format Format
	level  slog.Level
	output io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Format Format
	Level  slog.Level
	// Output defaults to os.Stderr.
	Output io.Writer
	// Colors enables ANSI colors for compact and pretty output. When false and
	// Output is a terminal, colors are turned on anyway.
	Colors bool
}

// NewHandler creates a new Handler with the given options.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	format := opts.Format
	if format == "" {
		format = FormatCompact
	}

	colors := opts.Colors
	if !colors && format != FormatJSON {
		if f, ok := output.(*os.File); ok {
			colors = isTerminal(f)
		}
	}

	return &Handler{
		format: format,
		level:  opts.Level,
		output: output,
		colors: colors,
		mu:     &sync.Mutex{},
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var line []byte
	switch h.format {
	case FormatPretty:
		line = h.pretty(r)
	case FormatJSON:
		var err error
		if line, err = h.json(r); err != nil {
			return err
		}
	default:
		line = h.compact(r)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.output.Write(line)
	return err
}

// WithAttrs returns a Handler that adds attrs to every record. Keys are
// qualified with the groups open at this point. The returned handler shares
// the writer lock with its parent.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	if prefix := h.prefix(); prefix != "" {
		clone.attrs = append(clone.attrs, slog.Attr{Key: prefix, Value: slog.GroupValue(attrs...)})
	} else {
		clone.attrs = append(clone.attrs, attrs...)
	}
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// compact renders "2006-01-02 15:04:05 LEVEL Message → {json attrs}".
func (h *Handler) compact(r slog.Record) []byte {
	buf := make([]byte, 0, 256)
	buf = append(buf, r.Time.Format("2006-01-02 15:04:05")...)
	buf = append(buf, ' ')
	buf = h.appendLevel(buf, r.Level, fmt.Sprintf("%5s", LogLevelString(r.Level)))
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	if attrs := h.collectAttrs(r); len(attrs) > 0 {
		buf = append(buf, " → "...)
		if data, err := json.Marshal(attrs); err != nil {
			buf = append(buf, "[json-error]"...)
		} else {
			buf = append(buf, data...)
		}
	}
	return append(buf, '\n')
}

// pretty renders the header line followed by one tree-indented line per
// attribute, keys sorted.
func (h *Handler) pretty(r slog.Record) []byte {
	buf := make([]byte, 0, 256)
	buf = append(buf, r.Time.Format("2006-01-02 15:04:05")...)
	buf = append(buf, ' ')
	buf = append(buf, iconForLevel(r.Level)...)
	buf = append(buf, ' ')
	level := LogLevelString(r.Level)
	buf = h.appendLevel(buf, r.Level, level)
	for i := len(level); i < 7; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, r.Message...)
	buf = append(buf, '\n')

	attrs := h.collectAttrs(r)
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		if i == len(keys)-1 {
			buf = append(buf, "                   └─ "...)
		} else {
			buf = append(buf, "                   ├─ "...)
		}
		buf = append(buf, key...)
		buf = append(buf, ": "...)
		buf = append(buf, fmt.Sprintf("%v", attrs[key])...)
		buf = append(buf, '\n')
	}
	return buf
}

// json renders one object with time, level and msg merged with the attributes.
func (h *Handler) json(r slog.Record) ([]byte, error) {
	data := h.collectAttrs(r)
	data["time"] = r.Time.Format("2006-01-02T15:04:05")
	data["level"] = LogLevelString(r.Level)
	data["msg"] = r.Message

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

func (h *Handler) appendLevel(buf []byte, level slog.Level, text string) []byte {
	if !h.colors {
		return append(buf, text...)
	}
	buf = append(buf, colorForLevel(level)...)
	buf = append(buf, text...)
	return append(buf, colorReset...)
}

// collectAttrs merges handler and record attributes into one map. Record
// keys are prefixed with the active groups.
func (h *Handler) collectAttrs(r slog.Record) map[string]any {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		addAttr(attrs, "", attr)
	}
	prefix := h.prefix()
	r.Attrs(func(attr slog.Attr) bool {
		addAttr(attrs, prefix, attr)
		return true
	})
	return attrs
}

// addAttr resolves attr and stores it under prefix. Groups are flattened to
// dotted keys; a group with an empty key is inlined and an empty group or
// zero attr is dropped.
func addAttr(dst map[string]any, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Key == "" && attr.Value.Kind() == slog.KindAny && attr.Value.Any() == nil {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		if len(group) == 0 {
			return
		}
		if attr.Key != "" {
			prefix = joinKey(prefix, attr.Key)
		}
		for _, a := range group {
			addAttr(dst, prefix, a)
		}
		return
	}
	dst[joinKey(prefix, attr.Key)] = jsonSafe(attr.Value.Any())
}

func (h *Handler) prefix() string {
	return strings.Join(h.groups, ".")
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// jsonSafe replaces NaN and ±Inf, which encoding/json rejects, with their
// strconv spelling. Operands and results routinely carry them.
func jsonSafe(v any) any {
	switch f := v.(type) {
	case float64:
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	case float32:
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return strconv.FormatFloat(float64(f), 'g', -1, 32)
		}
	}
	return v
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func colorForLevel(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return colorGray
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

func iconForLevel(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "🔍"
	case level < slog.LevelInfo:
		return "🔵"
	case level < slog.LevelWarn:
		return "🟢"
	case level < slog.LevelError:
		return "🟡"
	default:
		return "🔴"
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
