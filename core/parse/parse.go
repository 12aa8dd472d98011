package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrEmptyInput is returned when the content is blank and T is not a string.
var ErrEmptyInput = errors.New("empty input")

// ParseStringAs decodes content into T.
//
// A string T receives content verbatim. Any other T goes through JSON:
// strict decoding, then decoding of the jsonrepair output, then decoding
// with schema-style envelopes removed.
//
//	in, err := ParseStringAs[calculator.Input](`{A: 6, B: 3, Op: 'mul'}`)
func ParseStringAs[T any](content string) (T, error) {
	var result T

	if reflect.TypeFor[T]().Kind() == reflect.String {
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return result, ErrEmptyInput
	}

	strictErr := json.Unmarshal([]byte(content), &result)
	if strictErr == nil {
		return result, nil
	}

	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return *new(T), fmt.Errorf("decode %T: %w (repair failed: %v)", result, strictErr, err)
	}

	result = *new(T)
	if err := json.Unmarshal([]byte(repaired), &result); err == nil {
		return result, nil
	}

	unwrapped, err := unwrapSchemaValues(repaired)
	if err == nil {
		result = *new(T)
		if err = json.Unmarshal([]byte(unwrapped), &result); err == nil {
			return result, nil
		}
	}
	return *new(T), fmt.Errorf("decode %T from repaired input %s: %w", result, repaired, err)
}

// unwrapSchemaValues replaces every {"type": ..., "value": v} object with v.
//
//	{"A": {"type": "number", "value": 6}}  ->  {"A": 6}
func unwrapSchemaValues(jsonStr string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}
	out, err := json.Marshal(unwrap(data))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func unwrap(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if _, hasType := v["type"]; hasType {
			if value, hasValue := v["value"]; hasValue && len(v) == 2 {
				return unwrap(value)
			}
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = unwrap(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = unwrap(val)
		}
		return out
	default:
		return data
	}
}
