// SPDX-License-Identifier: MIT
// Package: heart/markup
//
// writer.go - HTML + SVG document emission.
//
// Layout (blank lines are part of the format):
//
//	<!DOCTYPE html>
//	<html>
//	<body>
//
//	<svg height="H" width="W" viewBox="MINX MINY VW VH">
//	<polyline points="x,y x,y ..." style="fill:red;stroke:none;" />
//	</svg>
//
//	</body>
//	</html>
//
// The svgo canvas never reports write errors, so all output goes through a
// bufio.Writer: its first failure is sticky and comes back from Flush.

package markup

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"

	"github.com/katalvlaran/heart/curve"
)

const (
	htmlHead = "<!DOCTYPE html>\n<html>\n<body>\n\n"
	htmlTail = "\n</body>\n</html>\n"

	// svgOpenFmt is an inline HTML5 <svg>; no XML prolog, no namespaces.
	svgOpenFmt = "<svg height=\"%d\" width=\"%d\" viewBox=\"%.*f %.*f %.*f %.*f\">\n"
)

// WriteHTML writes c as a filled polyline inside a complete HTML document.
// Points are emitted in curve order, so the polyline connects them exactly
// as sampled. c is expected in screen orientation (y grows downward).
//
// Errors:
//   - ErrNilWriter  if w is nil.
//   - ErrEmptyCurve if c has no points.
//   - ErrWrite      if w fails; the sink's error is wrapped as well, so both
//     errors.Is(err, ErrWrite) and errors.Is(err, sinkErr) hold.
//
// Complexity: O(n) time; O(n) extra space for the coordinate slices.
func WriteHTML(w io.Writer, c curve.Curve, opts ...Option) error {
	if w == nil {
		return markupErrorf(MethodWriteHTML, "%w", ErrNilWriter)
	}
	box, err := c.Bounds()
	if err != nil {
		return markupErrorf(MethodWriteHTML, "%w", ErrEmptyCurve)
	}

	cfg := newConfig(opts...)
	vb := FitViewBox(box, cfg.padding, cfg.symmetric)

	bw := bufio.NewWriter(w)
	writeDocument(bw, c, vb, cfg)

	if err := bw.Flush(); err != nil {
		return markupErrorf(MethodWriteHTML, "%w: %w", ErrWrite, err)
	}

	return nil
}

// writeDocument emits the whole page into bw. Errors are collected by bw.
func writeDocument(bw *bufio.Writer, c curve.Curve, vb ViewBox, cfg config) {
	d := cfg.precision

	bw.WriteString(htmlHead)
	fmt.Fprintf(bw, svgOpenFmt, cfg.height, cfg.width,
		d, snapZero(vb.MinX, d), d, snapZero(vb.MinY, d),
		d, snapZero(vb.Width, d), d, snapZero(vb.Height, d))

	canvas := svg.New(bw)
	canvas.Decimals = d
	if cfg.title != "" {
		canvas.Title(cfg.title)
	}
	xs, ys := c.XY()
	for i := range xs {
		xs[i], ys[i] = snapZero(xs[i], d), snapZero(ys[i], d)
	}
	canvas.Polyline(xs, ys, cfg.style())
	canvas.End()

	bw.WriteString(htmlTail)
}

// snapZero returns +0 for any v that prints as zero with d decimals, so
// the tiny negative x of a closed curve's last sample never prints as "-0.0000".
func snapZero(v float64, d int) float64 {
	scale := math.Pow10(d)
	if math.Round(v*scale) == 0 {
		return 0
	}

	return v
}
