// SPDX-License-Identifier: MIT
// Package: heart/curve
//
// errors.go - sentinel errors for the curve package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with a method prefix via curveErrorf and %w.
//   • Nothing in this package panics at runtime.

package curve

import (
	"errors"
	"fmt"
)

// ErrInvalidSamples indicates a non-positive sample count.
// Classification: invalid argument.
var ErrInvalidSamples = errors.New("curve: sample count must be positive")

// ErrTooManySamples indicates a sample count above MaxSamples.
// Classification: invalid argument.
var ErrTooManySamples = errors.New("curve: sample count exceeds MaxSamples")

// ErrNilFunc indicates Sample was called without a parametric function.
var ErrNilFunc = errors.New("curve: parametric function is nil")

// ErrEmptyCurve indicates an operation that needs at least one point got none.
var ErrEmptyCurve = errors.New("curve: curve has no points")

// Method names used as error prefixes.
const (
	MethodSample = "Sample"
	MethodHeart  = "Heart"
	MethodBounds = "Bounds"
)

// curveErrorf returns an error of the form "<method>: <formatted message>".
// Use %w in format to keep the sentinel visible to errors.Is.
func curveErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
