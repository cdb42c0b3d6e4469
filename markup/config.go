// SPDX-License-Identifier: MIT
// Package: heart/markup
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for every document knob.
//   • Defaults reproduce the classic heart page: 500×500 canvas, 5.0 margin
//     added once, red fill, no stroke.
//   • newConfig applies options in order (later overrides earlier).

package markup

import "fmt"

// Deterministic defaults (named, no magic numbers).
const (
	DefaultWidth     = 500   // <svg width>, pixels
	DefaultHeight    = 500   // <svg height>, pixels
	DefaultPadding   = 5.0   // margin in curve units
	DefaultPrecision = 4     // digits after the decimal point
	DefaultFill      = "red" // polyline fill colour
)

// Precision bounds accepted by WithPrecision.
const (
	MinPrecision = 0
	MaxPrecision = 12
)

// config aggregates all knobs used by WriteHTML.
// It is passed by value so callers cannot mutate a resolved config.
type config struct {
	width     int
	height    int
	padding   float64
	symmetric bool
	precision int
	fill      string
	title     string
}

// newConfig builds a config with deterministic defaults and applies opts.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		width:     DefaultWidth,
		height:    DefaultHeight,
		padding:   DefaultPadding,
		symmetric: false,
		precision: DefaultPrecision,
		fill:      DefaultFill,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// style renders the polyline style attribute value.
func (c config) style() string {
	return fmt.Sprintf("fill:%s;stroke:none;", c.fill)
}
