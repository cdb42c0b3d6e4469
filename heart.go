// SPDX-License-Identifier: MIT
// Package: heart
//
// heart.go - configuration and the single public entry-point, Render.
//
// Design contract (strict):
//   • One orchestrator: Render(w, cfg). Validate → generate → flip y → write.
//   • Config is a plain value; the zero Config is invalid, start from DefaultConfig.
//   • Render never panics: Config is validated before markup options are built
//     (option constructors panic on bad input by contract).
//   • Determinism: same Config ⇒ byte-identical output.

package heart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/heart/curve"
	"github.com/katalvlaran/heart/markup"
)

// DefaultSamples is the number of pieces the heart is cut into.
const DefaultSamples = 300

// MethodRender prefixes errors returned by Render.
const MethodRender = "Render"

// ErrInvalidConfig indicates a Config field out of range. The specific
// sentinel (curve.ErrInvalidSamples, markup.ErrInvalidCanvas, …) is wrapped
// alongside it.
var ErrInvalidConfig = errors.New("heart: invalid config")

// Config holds every knob of a render pass.
//
// Fields:
//   - Samples          - pieces the curve is cut into (1..curve.MaxSamples); Samples+1 points are drawn.
//   - Width, Height    - pixel size of the <svg> element (>0).
//   - Padding          - viewBox margin in curve units (finite, >=0).
//   - Precision        - digits after the decimal point in coordinates (0..12).
//   - SymmetricPadding - pad every side; false adds Padding to the extent once.
//   - Fill             - polyline fill colour (CSS colour, see markup.ValidateFill).
//   - Title            - optional SVG <title>; empty means none.
type Config struct {
	Samples          int
	Width            int
	Height           int
	Padding          float64
	Precision        int
	SymmetricPadding bool
	Fill             string
	Title            string
}

// DefaultConfig returns the classic page: 300 pieces, 500×500 canvas,
// 5-unit margin added once, red fill, 4 decimals.
func DefaultConfig() Config {
	return Config{
		Samples:   DefaultSamples,
		Width:     markup.DefaultWidth,
		Height:    markup.DefaultHeight,
		Padding:   markup.DefaultPadding,
		Precision: markup.DefaultPrecision,
		Fill:      markup.DefaultFill,
	}
}

// Validate reports the first out-of-range field, checked in declaration order.
// The returned error matches both ErrInvalidConfig and the field's sentinel.
func (c Config) Validate() error {
	if err := curve.ValidateSamples(c.Samples); err != nil {
		return fmt.Errorf("%w: samples=%d: %w", ErrInvalidConfig, c.Samples, err)
	}
	if err := markup.ValidateCanvas(c.Width, c.Height); err != nil {
		return fmt.Errorf("%w: canvas=%dx%d: %w", ErrInvalidConfig, c.Width, c.Height, err)
	}
	if err := markup.ValidatePadding(c.Padding); err != nil {
		return fmt.Errorf("%w: padding=%g: %w", ErrInvalidConfig, c.Padding, err)
	}
	if err := markup.ValidatePrecision(c.Precision); err != nil {
		return fmt.Errorf("%w: precision=%d: %w", ErrInvalidConfig, c.Precision, err)
	}
	if err := markup.ValidateFill(c.Fill); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// options translates a validated Config into markup options.
func (c Config) options() []markup.Option {
	return []markup.Option{
		markup.WithCanvas(c.Width, c.Height),
		markup.WithPadding(c.Padding),
		markup.WithSymmetricPadding(c.SymmetricPadding),
		markup.WithPrecision(c.Precision),
		markup.WithFill(c.Fill),
		markup.WithTitle(c.Title),
	}
}

// Render samples the heart curve, flips it into screen orientation and
// writes the HTML document to w.
//
// Errors (all wrapped as "Render: …"):
//   - ErrInvalidConfig (+ field sentinel) for a bad cfg; nothing is written.
//   - markup.ErrNilWriter if w is nil.
//   - markup.ErrWrite (+ the sink's error) if w fails.
//
// Complexity: O(cfg.Samples) time and memory.
func Render(w io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", MethodRender, err)
	}

	c, err := curve.Heart(cfg.Samples)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodRender, err)
	}
	screen := c.FlipY()
	box, err := screen.Bounds()
	if err != nil {
		return fmt.Errorf("%s: %w", MethodRender, err)
	}

	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		vb := markup.FitViewBox(box, cfg.Padding, cfg.SymmetricPadding)
		log.Debug("heart sampled",
			slog.Int("samples", cfg.Samples),
			slog.Int("points", screen.Len()),
			slog.Group("bounds",
				slog.Float64("min_x", box.MinX), slog.Float64("min_y", box.MinY),
				slog.Float64("max_x", box.MaxX), slog.Float64("max_y", box.MaxY)),
			slog.Group("viewbox",
				slog.Float64("min_x", vb.MinX), slog.Float64("min_y", vb.MinY),
				slog.Float64("width", vb.Width), slog.Float64("height", vb.Height)),
		)
	}

	if err := markup.WriteHTML(w, screen, cfg.options()...); err != nil {
		return fmt.Errorf("%s: %w", MethodRender, err)
	}
	log.Debug("heart written", slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))

	return nil
}
