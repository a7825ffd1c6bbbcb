// Command nebula renders procedural particle clouds: either a single
// frame to a PNG file, or live in the terminal with auto-rotation.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lunarc/nebula/internal/config"
	"github.com/lunarc/nebula/internal/engine"
	"github.com/lunarc/nebula/internal/engine/outline"
	"github.com/lunarc/nebula/internal/engine/render"
	"github.com/lunarc/nebula/internal/logger"
)

var (
	flagOut    = flag.String("out", "", "Render one frame to this PNG file and exit")
	flagWidth  = flag.Int("width", 1024, "Output width in pixels (PNG mode)")
	flagHeight = flag.Int("height", 768, "Output height in pixels (PNG mode)")
	flagLive   = flag.Bool("live", false, "Render live in the terminal")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nebula: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "nebula: init logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	eng := engine.New(cfg)
	if cfg.Generation.SVGFile != "" {
		loadOutline(eng, cfg)
	}

	switch {
	case *flagLive:
		if err := runLive(eng, cfg); err != nil {
			logger.Error("live viewer failed", zap.Error(err))
			os.Exit(1)
		}
	default:
		out := *flagOut
		if out == "" {
			out = "nebula.png"
		}
		if err := renderPNG(eng, cfg, out); err != nil {
			logger.Error("render failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("frame written", zap.String("path", out))
	}
}

// loadOutline reads the configured SVG file and regenerates with its
// outline. A missing or unusable file degrades to the generator's
// single-point fallback rather than aborting.
func loadOutline(eng *engine.Engine, cfg *config.Config) {
	data, err := os.ReadFile(cfg.Generation.SVGFile)
	if err != nil {
		logger.Warn("cannot read SVG file", zap.String("path", cfg.Generation.SVGFile), zap.Error(err))
		return
	}
	o := outline.ParseSVG(data)
	if o == nil {
		logger.Warn("SVG file has no usable geometry", zap.String("path", cfg.Generation.SVGFile))
		return
	}
	eng.SetOutline(o)
	eng.Regenerate(cfg)
}

func renderPNG(eng *engine.Engine, cfg *config.Config, path string) error {
	canvas := render.NewGGCanvas(*flagWidth, *flagHeight)
	defer canvas.Close()

	rot := engine.RotationState{
		X: cfg.Camera.RotationX,
		Y: cfg.Camera.RotationY,
		Z: cfg.Camera.RotationZ,
	}
	eng.RenderFrame(canvas, rot)
	return canvas.Context().SavePNG(path)
}
