package jsonschema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Schema is the subset of JSON Schema emitted for tool parameters and results.
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Description          string             `json:"description,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	Enum                 []any              `json:"enum,omitempty"`
}

// GenerateJSONSchema returns the schema for T. Pointers are dereferenced.
// Self-referencing structs stop at the first repetition with a bare
// {"type":"object"}.
func GenerateJSONSchema[T any]() (*Schema, error) {
	return generate(reflect.TypeFor[T](), map[reflect.Type]bool{})
}

func generate(t reflect.Type, seen map[reflect.Type]bool) (*Schema, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		if seen[t] {
			return &Schema{Type: "object"}, nil
		}
		seen[t] = true
		defer delete(seen, t)
		return generateStruct(t, seen)
	case reflect.Slice, reflect.Array:
		items, err := generate(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", t.Key())
		}
		values, err := generate(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "object", AdditionalProperties: values}, nil
	case reflect.Interface:
		return &Schema{}, nil
	}

	typ, err := primitiveType(t)
	if err != nil {
		return nil, err
	}
	return &Schema{Type: typ}, nil
}

func primitiveType(t reflect.Type) (string, error) {
	switch t.Kind() {
	case reflect.String:
		return "string", nil
	case reflect.Bool:
		return "boolean", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer", nil
	case reflect.Float32, reflect.Float64:
		return "number", nil
	}
	return "", fmt.Errorf("unsupported type %s", t)
}

func generateStruct(t reflect.Type, seen map[reflect.Type]bool) (*Schema, error) {
	schema := &Schema{Type: "object", Properties: map[string]*Schema{}}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}

		fieldSchema, err := generate(field.Type, seen)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		requiredByTag, err := applyTag(field, fieldSchema)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		schema.Properties[name] = fieldSchema
		if requiredByTag || (field.Type.Kind() != reflect.Ptr && !omitEmpty) {
			schema.Required = append(schema.Required, name)
		}
	}
	return schema, nil
}

func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, strings.Contains(opts, "omitempty"), false
}

// applyTag reads a `jsonschema:"description=...,enum=a,enum=b,required"` tag
// into s and reports whether the field is marked required.
func applyTag(field reflect.StructField, s *Schema) (bool, error) {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return false, nil
	}

	required := false
	for _, part := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "required":
			required = true
		case "description":
			s.Description = value
		case "enum":
			v, err := enumValue(field.Type, value)
			if err != nil {
				return false, err
			}
			s.Enum = append(s.Enum, v)
		case "":
		default:
			return false, fmt.Errorf("unknown jsonschema tag key %q", key)
		}
	}
	return required, nil
}

func enumValue(t reflect.Type, raw string) (any, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(raw, 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(raw, 64)
	case reflect.Bool:
		return strconv.ParseBool(raw)
	}
	return raw, nil
}
