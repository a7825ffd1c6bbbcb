package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagShape  = flag.String("shape", "", "Shape kind to generate")
	flagCount  = flag.Int("count", 0, "Particle count")
	flagSeed   = flag.Int64("seed", 0, "RNG seed (0 seeds from the clock)")
	flagSVG    = flag.String("svg", "", "SVG file for the svg-extrude shape")
	flagLens   = flag.String("lens", "", "Camera lens: perspective or orthographic")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagShape != "" {
		cfg.Generation.Shape = *flagShape
	}
	if *flagCount > 0 {
		cfg.Generation.Count = *flagCount
	}
	if *flagSeed != 0 {
		cfg.Generation.Seed = *flagSeed
	}
	if *flagSVG != "" {
		cfg.Generation.SVGFile = *flagSVG
	}
	if *flagLens != "" {
		cfg.Camera.Lens = *flagLens
	}
}
