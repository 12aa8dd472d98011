// Package jsonschema derives JSON Schema documents from Go types by
// reflection. It covers what tool inputs and outputs need: structs with json
// and jsonschema tags, primitives, slices, maps and pointers.
package jsonschema
