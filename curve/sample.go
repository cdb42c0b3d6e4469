// SPDX-License-Identifier: MIT
// Package: heart/curve
//
// sample.go - uniform sampling of closed parametric curves and the heart curve.
//
// Contract:
//   • Sample(n, fn) returns exactly n+1 points for t_i = 2π·i/n, i = 0..n.
//   • Both endpoints are included, so a closed curve starts and ends on the
//     same point up to rounding.
//   • Pure: same n and fn ⇒ identical output. No global state.

package curve

import "math"

// Tau is one full turn, 2π.
const Tau = 2.0 * math.Pi

// MaxSamples caps the sample count so the n+1 point buffer stays allocatable.
const MaxSamples = 1 << 22

// Heart curve coefficients (MathWorld "Heart Curve").
const (
	heartScaleX = 16.0
	heartCos1   = 13.0
	heartCos2   = 5.0
	heartCos3   = 2.0
	heartCos4   = 1.0
)

// Sample evaluates fn at n+1 uniformly spaced parameters over [0, 2π].
//
// The parameter is derived from the integer index on every step instead of
// being accumulated, so rounding cannot add or drop the final sample.
//
// Errors:
//   - ErrInvalidSamples if n <= 0.
//   - ErrTooManySamples if n > MaxSamples.
//   - ErrNilFunc if fn is nil.
//
// Complexity: O(n) time, O(n) space.
func Sample(n int, fn func(t float64) Point) (Curve, error) {
	if err := ValidateSamples(n); err != nil {
		return nil, curveErrorf(MethodSample, "n=%d: %w", n, err)
	}
	if fn == nil {
		return nil, curveErrorf(MethodSample, "%w", ErrNilFunc)
	}

	out := make(Curve, n+1)
	step := float64(n)
	for i := 0; i <= n; i++ {
		out[i] = fn(Tau * float64(i) / step)
	}

	return out, nil
}

// ValidateSamples reports whether n is an acceptable sample count:
// ErrInvalidSamples for n <= 0, ErrTooManySamples for n > MaxSamples.
func ValidateSamples(n int) error {
	switch {
	case n <= 0:
		return ErrInvalidSamples
	case n > MaxSamples:
		return ErrTooManySamples
	}

	return nil
}

// HeartX returns x(t) = 16·sin³(t).
func HeartX(t float64) float64 {
	s := math.Sin(t)

	return heartScaleX * s * s * s
}

// HeartY returns y(t) = 13·cos(t) − 5·cos(2t) − 2·cos(3t) − cos(4t).
// The curve is authored y-up; HeartY(0) == 5 and HeartY(π) == −17.
func HeartY(t float64) float64 {
	return heartCos1*math.Cos(t) -
		heartCos2*math.Cos(2*t) -
		heartCos3*math.Cos(3*t) -
		heartCos4*math.Cos(4*t)
}

// HeartPoint evaluates the heart curve at t.
func HeartPoint(t float64) Point {
	return Point{X: HeartX(t), Y: HeartY(t)}
}

// Heart samples the heart curve with n pieces, returning n+1 points in the
// curve's own y-up orientation. Call FlipY before drawing to a y-down canvas.
//
// Errors:
//   - ErrInvalidSamples if n <= 0.
//
// Complexity: O(n) time, O(n) space.
func Heart(n int) (Curve, error) {
	c, err := Sample(n, HeartPoint)
	if err != nil {
		return nil, curveErrorf(MethodHeart, "%w", err)
	}

	return c, nil
}
