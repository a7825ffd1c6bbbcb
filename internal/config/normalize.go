package config

// Range constraints applied by Normalize.
const (
	maxCount   = 100000
	minFocal   = 24
	maxFocal   = 200
	minZoom    = 0.2
	maxZoom    = 5.0
	minSpacing = 0.1
	maxSpacing = 4.0
	maxHubs    = 64
	maxPerHub  = 512
)

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize clamps every numeric field into its documented range and
// substitutes defaults for out-of-range values. It is applied once at
// construction; downstream code assumes normalized values and never
// re-validates. An unknown shape name is deliberately left alone: the
// engine renders an empty collection for it rather than guessing.
func (c *Config) Normalize() {
	d := Default()

	g := &c.Generation
	if g.Shape == "" {
		g.Shape = d.Generation.Shape
	}
	if g.Count < 1 || g.Count > maxCount {
		g.Count = DefaultCount
	}
	g.SpiralArms = clampI(g.SpiralArms, 1, 8)
	if g.ExtrudeDepth <= 0 || g.ExtrudeDepth > 1 {
		g.ExtrudeDepth = d.Generation.ExtrudeDepth
	}
	g.Randomness = clampF(g.Randomness, 0, 1)

	n := &c.Connection
	n.HubCount = clampI(n.HubCount, 0, maxHubs)
	n.PerHub = clampI(n.PerHub, 0, maxPerHub)
	n.Spread = clampF(n.Spread, 0, 1)
	n.Focus = clampF(n.Focus, 0, 1)
	switch n.Placement {
	case "mixed", "inside", "outside":
	default:
		n.Placement = d.Connection.Placement
	}
	switch n.Distribution {
	case "nearest", "random", "weighted", "stratified":
	default:
		n.Distribution = d.Connection.Distribution
	}

	cam := &c.Camera
	switch cam.Lens {
	case "perspective", "orthographic":
	default:
		cam.Lens = d.Camera.Lens
	}
	cam.FocalLength = clampF(cam.FocalLength, minFocal, maxFocal)
	if cam.Zoom == 0 {
		cam.Zoom = d.Camera.Zoom
	}
	cam.Zoom = clampF(cam.Zoom, minZoom, maxZoom)
	if cam.Spacing == 0 {
		cam.Spacing = d.Camera.Spacing
	}
	cam.Spacing = clampF(cam.Spacing, minSpacing, maxSpacing)

	a := &c.Appearance
	if a.SquareSize <= 0 {
		a.SquareSize = d.Appearance.SquareSize
	}
	a.SquareSize = clampF(a.SquareSize, 0.5, 20)
	if a.LineWidth <= 0 {
		a.LineWidth = d.Appearance.LineWidth
	}
	a.LineWidth = clampF(a.LineWidth, 0.25, 10)
	a.NonConnectedDim = clampF(a.NonConnectedDim, 0, 1)
}
