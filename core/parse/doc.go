// Package parse decodes loosely-formed JSON arriving from script hosts.
// Hand-written host code often passes object literals rather than strict
// JSON (unquoted keys, single quotes, trailing commas). [ParseStringAs]
// tries strict decoding first, then repairs the text with jsonrepair, then
// unwraps {"type": ..., "value": ...} envelopes before giving up.
package parse
