package console

import (
	"context"
	"io"
	"sync"

	"github.com/leofalp/wasmcalc/core/calc"
	"github.com/leofalp/wasmcalc/providers/observability"
)

var (
	_ calc.Console = (*WriterConsole)(nil)
	_ calc.Console = (*ObserverConsole)(nil)
	_ calc.Console = Func{}
	_ calc.Console = Discard
)

// WriterConsole writes each message as one line. Log lines go to out and
// diagnostics to errOut.
type WriterConsole struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// Writer returns a WriterConsole. A nil errOut sends diagnostics to out.
func Writer(out, errOut io.Writer) *WriterConsole {
	if errOut == nil {
		errOut = out
	}
	return &WriterConsole{out: out, errOut: errOut}
}

func (c *WriterConsole) Log(msg string) {
	c.write(c.out, msg)
}

func (c *WriterConsole) Error(msg string) {
	c.write(c.errOut, msg)
}

func (c *WriterConsole) write(w io.Writer, msg string) {
	if w == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// The sink cannot report failures; a lost console line is acceptable.
	_, _ = io.WriteString(w, msg+"\n")
}

// ObserverConsole forwards Log to Logger.Info and Error to Logger.Error,
// attaching the configured attributes to every line.
type ObserverConsole struct {
	logger observability.Logger
	attrs  []observability.Attribute
}

// Observer returns an ObserverConsole writing through logger.
func Observer(logger observability.Logger, attrs ...observability.Attribute) *ObserverConsole {
	return &ObserverConsole{logger: logger, attrs: attrs}
}

func (c *ObserverConsole) Log(msg string) {
	if c.logger != nil {
		c.logger.Info(context.Background(), msg, c.attrs...)
	}
}

func (c *ObserverConsole) Error(msg string) {
	if c.logger != nil {
		c.logger.Error(context.Background(), msg, c.attrs...)
	}
}

// Func adapts plain functions to calc.Console. A nil field drops the
// corresponding messages.
type Func struct {
	LogFunc   func(msg string)
	ErrorFunc func(msg string)
}

func (f Func) Log(msg string) {
	if f.LogFunc != nil {
		f.LogFunc(msg)
	}
}

func (f Func) Error(msg string) {
	if f.ErrorFunc != nil {
		f.ErrorFunc(msg)
	}
}

// Discard drops every message.
var Discard = Func{}
