// Package tool binds a typed Go function to a name, a description and JSON
// Schemas derived from its input and output types, so hosts that only speak
// JSON strings can discover and invoke it. Create tools with [NewTool] and
// call them through [Tool.Call].
package tool
