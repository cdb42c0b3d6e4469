// Package curve samples closed parametric curves into ordered point
// sequences and measures them.
//
// 🚀 What is inside?
//
//	• Point / Curve - a single ordered sequence of (x, y) pairs, so x and y
//	  can never desynchronize in length or order.
//	• Sample        - uniform sampling of any t ↦ (x, y) over [0, 2π].
//	• Heart         - the classic heart curve (MathWorld "Heart Curve"):
//	    x(t) = 16·sin³(t)
//	    y(t) = 13·cos(t) − 5·cos(2t) − 2·cos(3t) − cos(4t)
//	• FlipY         - y-axis inversion for y-down targets such as SVG.
//	• Bounds        - axis-aligned bounding box in one linear scan.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/heart/curve"
//
//	c, err := curve.Heart(300) // 301 points, c[0] == c[300] up to rounding
//	if err != nil {
//	  // errors.Is(err, curve.ErrInvalidSamples)
//	}
//	screen := c.FlipY()
//	box, _ := screen.Bounds()
//
// Sampling is driven by an integer index (t_i = 2π·i/n, i = 0..n), never by
// accumulating t += dt, so the sample count is exactly n+1 on every platform.
//
// Performance:
//
//   - Time:   O(n) for Sample/Heart/FlipY/Bounds
//   - Memory: O(n) for the returned Curve
package curve
