package markup

import "github.com/katalvlaran/heart/curve"

// ViewBox is the coordinate window an SVG canvas maps onto its pixel area.
type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// FitViewBox frames b with a margin of pad curve units.
//
// The origin always moves out by pad. With symmetric == false the extent
// grows by pad only once, leaving no margin on the right and bottom edges:
//
//	[MinX−pad, MinY−pad, W+pad, H+pad]
//
// With symmetric == true every side gets the same margin:
//
//	[MinX−pad, MinY−pad, W+2·pad, H+2·pad]
func FitViewBox(b curve.BBox, pad float64, symmetric bool) ViewBox {
	grow := pad
	if symmetric {
		grow = 2 * pad
	}

	return ViewBox{
		MinX:   b.MinX - pad,
		MinY:   b.MinY - pad,
		Width:  b.Width() + grow,
		Height: b.Height() + grow,
	}
}
