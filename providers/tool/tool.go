package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leofalp/wasmcalc/core/parse"
	"github.com/leofalp/wasmcalc/internal/jsonschema"
	"github.com/leofalp/wasmcalc/providers/observability"
)

// Tool is a named, typed function with JSON Schemas for its input and output.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
}

// Info is the metadata a host needs to present and validate a tool call.
type Info struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters"`
	Output      *jsonschema.Schema `json:"output,omitempty"`
}

// GenericTool is implemented by every Tool regardless of its type parameters.
type GenericTool interface {
	ToolInfo() Info
	// Call decodes inputJSON, runs the tool and returns its JSON-encoded output.
	Call(ctx context.Context, inputJSON string) (string, error)
}

type options struct {
	description string
}

// Option configures a Tool built by [NewTool].
type Option func(*options)

// WithDescription sets the human-readable description.
func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// NewTool builds a Tool, deriving schemas for I and O. It panics if either
// type cannot be described, which is a programming error in the tool's types.
//
//	calc := tool.NewTool("Calculator", fn, tool.WithDescription("Basic arithmetic."))
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), opts ...Option) *Tool[I, O] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	parameters, err := jsonschema.GenerateJSONSchema[I]()
	if err != nil {
		panic(fmt.Sprintf("tool %s: input schema: %v", name, err))
	}
	output, err := jsonschema.GenerateJSONSchema[O]()
	if err != nil {
		panic(fmt.Sprintf("tool %s: output schema: %v", name, err))
	}

	return &Tool[I, O]{
		Name:        name,
		Description: o.description,
		Parameters:  parameters,
		Output:      output,
		Function:    function,
	}
}

// ToolInfo returns the tool's metadata.
func (t *Tool[I, O]) ToolInfo() Info {
	return Info{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Output:      t.Output,
	}
}

// Call decodes inputJSON into I (repairing loose JSON, see [parse.ParseStringAs]),
// runs the function and encodes the result.
//
// When ctx carries an observability provider, the call runs inside a
// tool.call span; otherwise events go to the span already in ctx, if any.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	span := observability.SpanFromContext(ctx)
	if observer := observability.ObserverFromContext(ctx); observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanToolCall,
			observability.String(observability.AttrToolName, t.Name),
		)
		defer span.End()
	}

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, observability.TruncateStringDefault(inputJSON)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()

	input, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		err = fmt.Errorf("tool %s: parse input: %w", t.Name, err)
		recordFailure(span, err, time.Since(start))
		return "", err
	}

	output, err := t.Function(ctx, input)
	if err != nil {
		recordFailure(span, err, time.Since(start))
		return "", err
	}

	data, err := json.Marshal(output)
	if err != nil {
		err = fmt.Errorf("tool %s: encode output: %w", t.Name, err)
		recordFailure(span, err, time.Since(start))
		return "", err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, string(data)),
			observability.Duration(observability.AttrToolDuration, time.Since(start)),
		)
		span.SetStatus(observability.StatusOK, "")
	}
	return string(data), nil
}

func recordFailure(span observability.Span, err error, elapsed time.Duration) {
	if span == nil {
		return
	}
	span.RecordError(err)
	span.SetAttributes(
		observability.String(observability.AttrToolError, err.Error()),
		observability.Duration(observability.AttrToolDuration, elapsed),
	)
	span.SetStatus(observability.StatusError, err.Error())
}
