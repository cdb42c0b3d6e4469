// SPDX-License-Identifier: MIT
// Package: heart/curve
//
// types.go - point, curve and bounding-box value types.

package curve

// Point is a single sample (X, Y) of a parametric curve.
type Point struct {
	X float64
	Y float64
}

// Curve is an ordered sequence of samples; index order is parameter order,
// which is the order a polyline connects them in.
type Curve []Point

// BBox is the minimal axis-aligned rectangle containing a set of points.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width returns MaxX − MinX.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY − MinY.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Len returns the number of samples.
func (c Curve) Len() int { return len(c) }

// XY splits the curve into parallel coordinate slices of equal length.
// Intended only for boundaries that want x's and y's separately.
// Complexity: O(n) time, O(n) space.
func (c Curve) XY() (xs, ys []float64) {
	xs = make([]float64, len(c))
	ys = make([]float64, len(c))
	for i, p := range c {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}

// FlipY returns a copy of c with every Y negated. The receiver is untouched.
// Used to move a y-up mathematical curve into a y-down screen space.
// Complexity: O(n) time, O(n) space.
func (c Curve) FlipY() Curve {
	if c == nil {
		return nil
	}
	out := make(Curve, len(c))
	for i, p := range c {
		out[i] = Point{X: p.X, Y: -p.Y}
	}

	return out
}

// Bounds returns the bounding box of c in a single pass.
// Returns ErrEmptyCurve when c has no points.
// Complexity: O(n) time, O(1) space.
func (c Curve) Bounds() (BBox, error) {
	if len(c) == 0 {
		return BBox{}, curveErrorf(MethodBounds, "%w", ErrEmptyCurve)
	}

	b := BBox{MinX: c[0].X, MinY: c[0].Y, MaxX: c[0].X, MaxY: c[0].Y}
	for _, p := range c[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}

	return b, nil
}
