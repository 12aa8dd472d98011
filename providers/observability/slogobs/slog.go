package slogobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/leofalp/wasmcalc/providers/observability"
)

// Observer implements observability.Provider with a slog.Logger.
type Observer struct {
	logger  *slog.Logger
	metrics *metricsStore
}

var _ observability.Provider = (*Observer)(nil)

// New creates an Observer. Without options the format and level come from
// the environment (see [GetFormatFromEnv], [GetLogLevelFromEnv]) and output
// goes to stderr.
//
//	observer := slogobs.New(
//	    slogobs.WithFormat(slogobs.FormatPretty),
//	    slogobs.WithLevel(slog.LevelDebug),
//	)
func New(opts ...Option) *Observer {
	cfg := applyOptions(opts...)

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(NewHandler(&HandlerOptions{
			Format: cfg.format,
			Level:  cfg.level,
			Output: cfg.output,
			Colors: cfg.colors,
		}))
	}

	return &Observer{
		logger:  logger,
		metrics: newMetricsStore(),
	}
}

// Logger returns the underlying slog.Logger.
func (o *Observer) Logger() *slog.Logger {
	return o.logger
}

// --- TRACING ---

// StartSpan logs a debug "Span started" line and returns a span whose End
// logs the elapsed time. ctx is returned with the span attached.
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	span := &slogSpan{
		name:      name,
		startTime: time.Now(),
		logger:    o.logger,
		attrs:     append([]observability.Attribute{}, attrs...),
	}

	logAttrs := append([]slog.Attr{
		slog.String("span", name),
		slog.String("event", "span.start"),
	}, toSlog(attrs)...)
	o.logger.LogAttrs(ctx, slog.LevelDebug, "Span started", logAttrs...)

	return observability.ContextWithSpan(ctx, span), span
}

type slogSpan struct {
	name      string
	startTime time.Time
	logger    *slog.Logger
	mu        sync.Mutex
	attrs     []observability.Attribute
}

func (s *slogSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	logAttrs := append([]slog.Attr{
		slog.String("span", s.name),
		slog.String("event", "span.end"),
		slog.Duration("duration", time.Since(s.startTime)),
	}, toSlog(s.attrs)...)
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span ended", logAttrs...)
}

func (s *slogSpan) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

func (s *slogSpan) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := "unset"
	switch code {
	case observability.StatusOK:
		status = "ok"
	case observability.StatusError:
		status = "error"
	}

	s.attrs = append(s.attrs, observability.String(observability.AttrStatus, status))
	if description != "" {
		s.attrs = append(s.attrs, observability.String(observability.AttrStatusDescription, description))
	}
}

// RecordError attaches err to the span and logs it at error level.
func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attrs = append(s.attrs, observability.Error(err))
	s.logger.LogAttrs(context.Background(), slog.LevelError, "Span error",
		slog.String("span", s.name),
		slog.String("event", "error"),
		slog.String(observability.AttrError, err.Error()),
	)
}

func (s *slogSpan) AddEvent(name string, attrs ...observability.Attribute) {
	logAttrs := append([]slog.Attr{
		slog.String("span", s.name),
		slog.String("event", name),
	}, toSlog(attrs)...)
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span event", logAttrs...)
}

// --- METRICS ---

// Counter returns the named counter, creating it on first use.
func (o *Observer) Counter(name string) observability.Counter {
	return o.metrics.counter(name, o.logger)
}

// Histogram returns the named histogram, creating it on first use.
func (o *Observer) Histogram(name string) observability.Histogram {
	return o.metrics.histogram(name, o.logger)
}

// CounterValue returns the running total of the named counter, or 0 if it
// was never used.
func (o *Observer) CounterValue(name string) int64 {
	o.metrics.mu.RLock()
	c, ok := o.metrics.counters[name]
	o.metrics.mu.RUnlock()
	if !ok {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// HistogramStats returns the number of observations and their sum for the
// named histogram.
func (o *Observer) HistogramStats(name string) (count int64, sum float64) {
	o.metrics.mu.RLock()
	h, ok := o.metrics.histograms[name]
	o.metrics.mu.RUnlock()
	if !ok {
		return 0, 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count, h.sum
}

type metricsStore struct {
	mu         sync.RWMutex
	counters   map[string]*slogCounter
	histograms map[string]*slogHistogram
}

func newMetricsStore() *metricsStore {
	return &metricsStore{
		counters:   make(map[string]*slogCounter),
		histograms: make(map[string]*slogHistogram),
	}
}

func (m *metricsStore) counter(name string, logger *slog.Logger) *slogCounter {
	m.mu.RLock()
	c, ok := m.counters[name]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Double-check after acquiring write lock
	if c, ok := m.counters[name]; ok {
		return c
	}
	c = &slogCounter{name: name, logger: logger}
	m.counters[name] = c
	return c
}

func (m *metricsStore) histogram(name string, logger *slog.Logger) *slogHistogram {
	m.mu.RLock()
	h, ok := m.histograms[name]
	m.mu.RUnlock()
	if ok {
		return h
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.histograms[name]; ok {
		return h
	}
	h = &slogHistogram{name: name, logger: logger}
	m.histograms[name] = h
	return h
}

type slogCounter struct {
	name   string
	logger *slog.Logger
	mu     sync.Mutex
	value  int64
}

// Add increments the counter and logs the new total at debug level.
func (c *slogCounter) Add(ctx context.Context, value int64, attrs ...observability.Attribute) {
	c.mu.Lock()
	c.value += value
	total := c.value
	c.mu.Unlock()

	logAttrs := append([]slog.Attr{
		slog.String("metric", c.name),
		slog.String("type", "counter"),
		slog.Int64("value", total),
		slog.Int64("delta", value),
	}, toSlog(attrs)...)
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Counter", logAttrs...)
}

type slogHistogram struct {
	name   string
	logger *slog.Logger
	mu     sync.Mutex
	count  int64
	sum    float64
}

// Record adds one observation and logs it at debug level.
func (h *slogHistogram) Record(ctx context.Context, value float64, attrs ...observability.Attribute) {
	h.mu.Lock()
	h.count++
	h.sum += value
	h.mu.Unlock()

	logAttrs := append([]slog.Attr{
		slog.String("metric", h.name),
		slog.String("type", "histogram"),
		slog.Float64("value", value),
	}, toSlog(attrs)...)
	h.logger.LogAttrs(ctx, slog.LevelDebug, "Histogram", logAttrs...)
}

// --- LOGGING ---

func (o *Observer) Trace(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, LevelTrace, msg, toSlog(attrs)...)
}

func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelDebug, msg, toSlog(attrs)...)
}

func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelInfo, msg, toSlog(attrs)...)
}

func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelWarn, msg, toSlog(attrs)...)
}

func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelError, msg, toSlog(attrs)...)
}

func toSlog(attrs []observability.Attribute) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, slog.Any(attr.Key, attr.Value))
	}
	return out
}
