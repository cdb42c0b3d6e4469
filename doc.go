// Package heart draws the classic parametric heart curve as an SVG polyline
// inside a minimal HTML page.
//
// 🚀 What is heart?
//
//	A small, deterministic pipeline:
//		• curve/  - sample x(t) = 16·sin³t, y(t) = 13cos t − 5cos 2t − 2cos 3t − cos 4t
//		            over [0, 2π], flip y for screen space, measure the bounding box
//		• markup/ - fit a padded viewBox and write <html><body><svg><polyline/>…
//		• heart   - Config + Render: generate → flip → write, in one call
//		• cmd/heart - writes the default page to stdout
//
// ✨ Guarantees:
//
//   - Exactly Samples+1 points, first ≈ last (closed curve), on every platform.
//   - Same Config ⇒ byte-identical output.
//   - Invalid configuration and sink write failures are returned as errors
//     (errors.Is against ErrInvalidConfig, curve.ErrInvalidSamples,
//     markup.ErrWrite, …); nothing is swallowed and nothing panics.
//   - Silent by default; plug a *slog.Logger in with SetLogger.
//
// Quick start:
//
//	if err := heart.Render(os.Stdout, heart.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//
//	go run github.com/katalvlaran/heart/cmd/heart > heart.html
package heart
