// SPDX-License-Identifier: MIT
// Package: varioscale/scale
//
// errors.go — sentinel errors and the structured ConfigError.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) carry semantics.
//   • Callers MUST use errors.Is(err, ErrX) to branch on the class and
//     errors.As(err, *ConfigError) to read the offending field.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     ConfigError attaches the field/reason context and wraps via Unwrap.
//   • Build never panics: every validation failure is a returned error, and
//     every returned error has a Fallback scale to pair with it.

package scale

import (
	"errors"
	"fmt"
)

// ErrInsufficientBreakpoints indicates fewer than two breakpoints were
// supplied; a scale needs at least one segment.
// Usage: if errors.Is(err, ErrInsufficientBreakpoints) { ... }.
var ErrInsufficientBreakpoints = errors.New("scale: need at least 2 breakpoints")

// ErrUnsortedBreakpoints indicates the breakpoint sequence is not strictly
// ascending (duplicates count as unsorted).
var ErrUnsortedBreakpoints = errors.New("scale: breakpoints must be strictly ascending")

// ErrWeightCountMismatch indicates len(Weights) != len(Breakpoints)−1.
var ErrWeightCountMismatch = errors.New("scale: weight count must equal breakpoint count minus one")

// ErrNegativeWeight indicates a segment weight below zero, which would make
// the forward mapping non-monotonic.
var ErrNegativeWeight = errors.New("scale: weights must be non-negative")

// ErrWeightSum indicates the weights deviate from a total of 1.0 by more
// than WeightSumTolerance.
var ErrWeightSum = errors.New("scale: weights must sum to 1")

// ConfigError reports which configuration field failed validation and why,
// wrapping the matching sentinel for errors.Is branching. It is the single
// error type Build returns, suitable for surfacing directly as user-visible
// validation feedback (e.g. highlighting the offending input).
type ConfigError struct {
	// Field is the offending Config field, e.g. "Weights".
	Field string
	// Reason is a short human-readable explanation.
	Reason string

	sentinel error
}

// configErrorf builds a *ConfigError wrapping the given sentinel.
func configErrorf(sentinel error, field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Field:    field,
		Reason:   fmt.Sprintf(format, args...),
		sentinel: sentinel,
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("scale: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap exposes the sentinel so errors.Is sees through the context.
func (e *ConfigError) Unwrap() error { return e.sentinel }
