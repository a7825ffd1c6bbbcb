// Package config handles engine configuration loading and management.
// A Config is an immutable snapshot: callers build one, normalize it
// once, and hand it to the engine; live updates mean building a new
// snapshot and regenerating.
package config

// Config holds all engine settings.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Connection ConnectionConfig `yaml:"connection"`
	Camera     CameraConfig     `yaml:"camera"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GenerationConfig selects the particle distribution.
type GenerationConfig struct {
	Shape        string  `yaml:"shape"`         // one of the shape kind names
	Count        int     `yaml:"count"`         // target particle count
	SpiralArms   int     `yaml:"spiral_arms"`   // spiral galaxy arm count
	ExtrudeDepth float64 `yaml:"extrude_depth"` // z extent of the SVG extrusion
	SnapToGrid   bool    `yaml:"snap_to_grid"`  // lattice mode for the SVG extrusion
	SVGFile      string  `yaml:"svg_file"`      // outline source for the SVG extrusion
	Randomness   float64 `yaml:"randomness"`    // positional jitter amount, 0..1
	Seed         int64   `yaml:"seed"`          // RNG seed; 0 seeds from the clock
}

// ConnectionConfig controls hub placement and particle selection.
type ConnectionConfig struct {
	Enabled      bool    `yaml:"enabled"`
	HubCount     int     `yaml:"hub_count"`
	PerHub       int     `yaml:"per_hub"`
	Placement    string  `yaml:"placement"`    // mixed, inside, outside
	Distribution string  `yaml:"distribution"` // nearest, random, weighted, stratified
	Spread       float64 `yaml:"spread"`       // reach interpolation, 0..1
	Focus        float64 `yaml:"focus"`        // weighted near-bias, 0..1
}

// CameraConfig holds the projection parameters and initial rotation.
type CameraConfig struct {
	RotationX       float64 `yaml:"rotation_x"`
	RotationY       float64 `yaml:"rotation_y"`
	RotationZ       float64 `yaml:"rotation_z"`
	Lens            string  `yaml:"lens"`         // perspective or orthographic
	FocalLength     float64 `yaml:"focal_length"` // millimetres, 24..200
	Zoom            float64 `yaml:"zoom"`         // 0.2..5.0
	Spacing         float64 `yaml:"spacing"`      // world-space spread factor
	AutoRotate      bool    `yaml:"auto_rotate"`
	AutoRotateSpeed float64 `yaml:"auto_rotate_speed"` // radians per second around Y
}

// AppearanceConfig holds colors and per-feature draw flags.
type AppearanceConfig struct {
	ParticleColor     string  `yaml:"particle_color"`
	NonConnectedColor string  `yaml:"non_connected_color"`
	BackgroundColor   string  `yaml:"background_color"`
	LineColor         string  `yaml:"line_color"`
	HubColor          string  `yaml:"hub_color"`
	SquareSize        float64 `yaml:"square_size"`
	LineWidth         float64 `yaml:"line_width"`
	DepthAlpha        bool    `yaml:"depth_alpha"`
	DepthSize         bool    `yaml:"depth_size"`
	ShowConnections   bool    `yaml:"show_connections"`
	ShowHubs          bool    `yaml:"show_hubs"`
	Highlight         bool    `yaml:"highlight"`
	NonConnectedDim   float64 `yaml:"non_connected_dim"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultCount is substituted for out-of-range particle counts.
const DefaultCount = 1500

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Shape:        "sphere",
			Count:        DefaultCount,
			SpiralArms:   3,
			ExtrudeDepth: 0.4,
			Randomness:   0.0,
		},
		Connection: ConnectionConfig{
			Enabled:      true,
			HubCount:     3,
			PerHub:       12,
			Placement:    "mixed",
			Distribution: "nearest",
			Spread:       0.5,
			Focus:        0.5,
		},
		Camera: CameraConfig{
			Lens:            "perspective",
			FocalLength:     50,
			Zoom:            1.0,
			Spacing:         1.0,
			AutoRotate:      true,
			AutoRotateSpeed: 0.4,
		},
		Appearance: AppearanceConfig{
			ParticleColor:     "#8af7ff",
			NonConnectedColor: "#8af7ff",
			BackgroundColor:   "#0b0e14",
			LineColor:         "#ffb86b",
			HubColor:          "#ffb86b",
			SquareSize:        2.4,
			LineWidth:         1.0,
			DepthAlpha:        true,
			DepthSize:         true,
			ShowConnections:   true,
			ShowHubs:          true,
			Highlight:         true,
			NonConnectedDim:   0.4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
