package render

// Depth-modulated alpha bounds. Alpha follows 0.3 + scale*0.7 and is
// clamped to a floor so distant points stay faintly visible.
const (
	alphaBase       = 0.3
	alphaRange      = 0.7
	particleFloor   = 0.05
	hubFloor        = 0.1
	hubMarkerFactor = 2.0 // hub squares are drawn larger than particles
)

// Style is the appearance configuration for one frame.
type Style struct {
	Background   Color
	Particle     Color
	NonConnected Color
	Line         Color
	Hub          Color

	SquareSize float64
	LineWidth  float64

	// DepthAlpha and DepthSize toggle modulation of opacity and size
	// by the projected scale.
	DepthAlpha bool
	DepthSize  bool

	ShowConnections bool
	ShowHubs        bool

	// HighlightConnected dims particles absent from the connection
	// set by NonConnectedDim and recolors them with NonConnected.
	HighlightConnected bool
	NonConnectedDim    float64
}

// DefaultStyle returns the documented appearance defaults.
func DefaultStyle() Style {
	return Style{
		Background:         Color{R: 0.043, G: 0.055, B: 0.078, A: 1}, // #0b0e14
		Particle:           Color{R: 0.54, G: 0.97, B: 1, A: 1},       // #8af7ff
		NonConnected:       Color{R: 0.54, G: 0.97, B: 1, A: 1},
		Line:               Color{R: 1, G: 0.72, B: 0.42, A: 0.8},
		Hub:                Color{R: 1, G: 0.72, B: 0.42, A: 1},
		SquareSize:         2.4,
		LineWidth:          1.0,
		DepthAlpha:         true,
		DepthSize:          true,
		ShowConnections:    true,
		ShowHubs:           true,
		HighlightConnected: true,
		NonConnectedDim:    0.4,
	}
}

// depthAlpha maps a projected scale to an opacity factor.
func depthAlpha(scale, floor float64) float64 {
	a := alphaBase + scale*alphaRange
	if a < floor {
		return floor
	}
	if a > 1 {
		return 1
	}
	return a
}
