// SPDX-License-Identifier: MIT
// Package: heart/markup
//
// options.go - functional options for WriteHTML.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     WriteHTML itself MUST NOT panic.
//   • Callers holding untrusted values should validate first (see the
//     Validate* helpers) and only then build options.

package markup

import (
	"math"
	"strings"
)

// Option customizes document emission by mutating a config before use.
type Option func(*config)

// WithCanvas sets the pixel size of the <svg> element.
// Panics if w <= 0 or h <= 0.
func WithCanvas(w, h int) Option {
	if err := ValidateCanvas(w, h); err != nil {
		panic("markup: WithCanvas(w<=0 || h<=0)")
	}
	return func(c *config) {
		c.width, c.height = w, h
	}
}

// WithPadding sets the viewBox margin in curve units.
// Panics if p is negative, NaN or infinite.
func WithPadding(p float64) Option {
	if err := ValidatePadding(p); err != nil {
		panic("markup: WithPadding(p<0 || p is not finite)")
	}
	return func(c *config) {
		c.padding = p
	}
}

// WithSymmetricPadding selects the padding layout: true pads every side,
// false (default) adds the margin to the extent only once.
func WithSymmetricPadding(on bool) Option {
	return func(c *config) {
		c.symmetric = on
	}
}

// WithPrecision sets how many digits follow the decimal point in coordinates
// and in the viewBox. Panics outside [MinPrecision, MaxPrecision].
func WithPrecision(d int) Option {
	if err := ValidatePrecision(d); err != nil {
		panic("markup: WithPrecision(d out of range)")
	}
	return func(c *config) {
		c.precision = d
	}
}

// WithFill sets the polyline fill colour (a CSS colour name, hex or
// functional notation). Panics when ValidateFill rejects color.
func WithFill(color string) Option {
	if err := ValidateFill(color); err != nil {
		panic("markup: WithFill(invalid colour)")
	}
	return func(c *config) {
		c.fill = color
	}
}

// WithTitle adds a <title> element to the SVG. Empty means no title.
func WithTitle(s string) Option {
	return func(c *config) {
		c.title = s
	}
}

// ValidateCanvas returns ErrInvalidCanvas unless both sizes are positive.
func ValidateCanvas(w, h int) error {
	if w <= 0 || h <= 0 {
		return ErrInvalidCanvas
	}

	return nil
}

// ValidatePadding returns ErrInvalidPadding for negative, NaN or infinite margins.
func ValidatePadding(p float64) error {
	if !(p >= 0) || math.IsInf(p, 1) {
		return ErrInvalidPadding
	}

	return nil
}

// ValidatePrecision returns ErrInvalidPrecision outside [MinPrecision, MaxPrecision].
func ValidatePrecision(d int) error {
	if d < MinPrecision || d > MaxPrecision {
		return ErrInvalidPrecision
	}

	return nil
}

// fillChars is every byte a fill colour may contain. It covers names
// ("red"), hex ("#ff0000") and functional forms ("rgb(255 0 0 / 50%)"),
// and excludes anything that could end the style attribute or add a
// declaration.
const fillChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"#(),.%/+- "

// ValidateFill returns ErrInvalidFill for a blank colour or one holding a
// byte outside fillChars (quotes, '=', ';', '<', '>', '&', ...).
func ValidateFill(color string) error {
	if strings.TrimSpace(color) == "" {
		return ErrInvalidFill
	}
	for i := 0; i < len(color); i++ {
		if strings.IndexByte(fillChars, color[i]) < 0 {
			return ErrInvalidFill
		}
	}

	return nil
}
