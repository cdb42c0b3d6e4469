// Package markup writes a curve as a filled SVG polyline inside a minimal,
// self-contained HTML document.
//
// The package offers the following key components:
//
//   - Viewport fitting:
//     – FitViewBox:          bounding box + margin → SVG viewBox.
//   - Document emission:
//     – WriteHTML:           <!DOCTYPE html> … <svg> <polyline/> </svg> … to any io.Writer.
//   - Configuration primitives (functional options, resolved into an
//     immutable config with deterministic defaults):
//     – WithCanvas:          pixel width/height of the <svg> element (500×500).
//     – WithPadding:         margin around the shape in curve units (5.0).
//     – WithSymmetricPadding: pad both sides of the extent instead of once.
//     – WithPrecision:       digits after the decimal point (4).
//     – WithFill:            polyline fill colour ("red"); stroke is always none.
//     – WithTitle:           optional accessible <title> element.
//
// Guarantees:
//
//   - Deterministic output: the same curve and options produce the same bytes.
//   - Write failures are never swallowed: every error from the sink surfaces
//     from WriteHTML wrapped with ErrWrite.
//   - Option constructors panic on meaningless values (programmer error);
//     WriteHTML itself never panics.
//
// Padding note: by default the margin is subtracted from the viewBox origin
// and added ONCE to the extent, so the right and bottom edges get no margin
// of their own. This is the historical layout of the heart document; pass
// WithSymmetricPadding(true) for an equal margin on every side.
//
// Element emission goes through github.com/ajstarks/svgo/float, which owns
// coordinate formatting (Decimals) and XML escaping.
package markup
