// Command heart writes a red parametric heart, drawn as an SVG polyline
// inside a minimal HTML page, to standard output.
//
//	heart > heart.html
package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/heart"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	heart.SetLogger(logger)

	if err := heart.Render(os.Stdout, heart.DefaultConfig()); err != nil {
		logger.Error("render heart", slog.Any("err", err))
		os.Exit(1)
	}
}
