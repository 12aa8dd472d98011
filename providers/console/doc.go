// Package console provides calc.Console implementations for hosts that are
// not a browser: plain writers, an observability.Logger bridge and function
// adapters. The browser binding lives in internal/jsbridge.
package console
