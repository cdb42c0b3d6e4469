// SPDX-License-Identifier: MIT
// Package: heart/markup
//
// errors.go - sentinel errors for the markup package.
//
// Error policy (same as the rest of the module):
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Method context is attached with markupErrorf and %w.
//   • Option constructors panic; WriteHTML returns errors.

package markup

import (
	"errors"
	"fmt"
)

// ErrNilWriter indicates WriteHTML was given no output sink.
var ErrNilWriter = errors.New("markup: writer is nil")

// ErrEmptyCurve indicates there are no points to draw.
var ErrEmptyCurve = errors.New("markup: curve has no points")

// ErrWrite indicates the output sink rejected a write (I/O failure).
// The sink's own error is wrapped alongside it.
var ErrWrite = errors.New("markup: write failed")

// ErrInvalidCanvas indicates a non-positive canvas width or height.
var ErrInvalidCanvas = errors.New("markup: canvas size must be positive")

// ErrInvalidPadding indicates a negative, NaN or infinite padding margin.
var ErrInvalidPadding = errors.New("markup: padding must be finite and non-negative")

// ErrInvalidPrecision indicates a precision outside [MinPrecision, MaxPrecision].
var ErrInvalidPrecision = errors.New("markup: precision out of range")

// ErrInvalidFill indicates an empty fill colour or one with characters that
// do not belong in a CSS colour.
var ErrInvalidFill = errors.New("markup: fill colour is invalid")

// MethodWriteHTML prefixes errors returned by WriteHTML.
const MethodWriteHTML = "WriteHTML"

func markupErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
