// Package config loads calculator settings from the environment.
//
// [Load] reads an optional .env file and then decodes WASMCALC_* variables.
// Builds without an environment, such as the browser module, use [Default].
package config
