// Package engine owns the current particle collection and connection
// graph and drives the per-frame projection and rendering pipeline.
//
// Regeneration fully replaces both snapshots; rendering treats them as
// read-only. Connection particle indices are only valid against the
// collection they were built from, so the two are always swapped
// together.
package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lunarc/nebula/internal/config"
	"github.com/lunarc/nebula/internal/engine/connection"
	"github.com/lunarc/nebula/internal/engine/outline"
	"github.com/lunarc/nebula/internal/engine/project"
	"github.com/lunarc/nebula/internal/engine/render"
	"github.com/lunarc/nebula/internal/engine/shape"
	"github.com/lunarc/nebula/internal/logger"
	"github.com/lunarc/nebula/pkg/math"
)

// viewportFill is the fraction of the smaller viewport dimension the
// unit shape spans at zoom 1.
const viewportFill = 0.8

// Engine holds the current scene snapshots and the style derived from
// the configuration. It is not safe for concurrent use; a host that
// renders on another goroutine must treat the snapshots as read-only
// during a pass and call Regenerate between passes.
type Engine struct {
	cfg     *config.Config
	rng     *rand.Rand
	points  []math.Vec3
	graph   connection.Graph
	style   render.Style
	outline *outline.Outline
}

// New creates an engine for the given normalized configuration and
// generates the initial scene. A zero seed seeds from the clock.
func New(cfg *config.Config) *Engine {
	seed := cfg.Generation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	e.style = styleFrom(cfg.Appearance)
	e.Regenerate(cfg)
	return e
}

// SetOutline supplies the extrusion cross-section for the svg-extrude
// shape. Pass nil to clear; the generator degrades to a single origin
// point without one. Takes effect on the next Regenerate.
func (e *Engine) SetOutline(o *outline.Outline) {
	e.outline = o
}

// Points returns the current particle collection. Callers must not
// mutate it.
func (e *Engine) Points() []math.Vec3 {
	return e.points
}

// Graph returns the current connection graph. Callers must not
// mutate it.
func (e *Engine) Graph() *connection.Graph {
	return &e.graph
}

// Regenerate rebuilds the particle collection and connection graph
// from a configuration snapshot. This is the expensive path; callers
// should debounce it rather than run it per frame.
func (e *Engine) Regenerate(cfg *config.Config) {
	e.cfg = cfg
	e.style = styleFrom(cfg.Appearance)

	gen := cfg.Generation
	kind, ok := shape.ParseKind(gen.Shape)
	if !ok {
		logger.Warn("unknown shape kind, rendering nothing", zap.String("shape", gen.Shape))
		e.points = nil
		e.graph = connection.Graph{}
		return
	}

	params := shape.Params{
		SpiralArms:   gen.SpiralArms,
		ExtrudeDepth: gen.ExtrudeDepth,
		SnapToGrid:   gen.SnapToGrid,
		Outline:      e.outline,
	}
	points := shape.Generate(kind, gen.Count, params, e.rng)
	if len(points) < gen.Count {
		logger.Debug("generator returned fewer points than requested",
			zap.String("shape", gen.Shape),
			zap.Int("requested", gen.Count),
			zap.Int("generated", len(points)))
	}
	if gen.Randomness > 0 {
		points = shape.Jitter(points, gen.Randomness, e.rng)
	}

	opts := connection.Options{
		Enabled:      cfg.Connection.Enabled,
		HubCount:     cfg.Connection.HubCount,
		PerHub:       cfg.Connection.PerHub,
		Placement:    connection.ParsePlacement(cfg.Connection.Placement),
		Distribution: connection.ParseDistribution(cfg.Connection.Distribution),
		Spread:       cfg.Connection.Spread,
		Focus:        cfg.Connection.Focus,
	}
	graph := connection.BuildGraph(points, opts, e.rng)
	if graph.Shortfall > 0 {
		logger.Debug("connection selection under-served",
			zap.Int("shortfall", graph.Shortfall))
	}

	// Swap both snapshots together; stale indices must never outlive
	// the collection they reference.
	e.points = points
	e.graph = graph

	logger.Debug("scene regenerated",
		zap.String("shape", gen.Shape),
		zap.Int("particles", len(points)),
		zap.Int("hubs", len(graph.Hubs)),
		zap.Int("connections", len(graph.Connections)))
}

// RenderFrame projects the current snapshots through the camera at
// the given rotation and composites them onto the canvas. It touches
// neither snapshot and may be called at display rate.
func (e *Engine) RenderFrame(c render.Canvas, rot RotationState) {
	w, h := c.Size()
	center := math.Vec2{X: float64(w) / 2, Y: float64(h) / 2}

	short := float64(h)
	if w < h {
		short = float64(w)
	}
	worldScale := short / 2 * viewportFill * e.cfg.Camera.Zoom

	cam := project.Camera{
		Lens:    project.ParseLens(e.cfg.Camera.Lens),
		FocalMm: e.cfg.Camera.FocalLength,
		Spacing: e.cfg.Camera.Spacing,
	}
	rotation := project.Rotation{X: rot.X, Y: rot.Y, Z: rot.Z}

	particles := project.Project(e.points, rotation, cam, center, worldScale)
	hubs := project.Project(e.graph.Hubs, rotation, cam, center, worldScale)

	render.DrawFrame(c, particles, hubs, &e.graph, e.style)
}

func styleFrom(a config.AppearanceConfig) render.Style {
	st := render.DefaultStyle()
	st.Particle = render.ParseHexColor(a.ParticleColor, st.Particle)
	st.NonConnected = render.ParseHexColor(a.NonConnectedColor, st.Particle)
	st.Background = render.ParseHexColor(a.BackgroundColor, st.Background)
	st.Line = render.ParseHexColor(a.LineColor, st.Line)
	st.Hub = render.ParseHexColor(a.HubColor, st.Hub)
	st.SquareSize = a.SquareSize
	st.LineWidth = a.LineWidth
	st.DepthAlpha = a.DepthAlpha
	st.DepthSize = a.DepthSize
	st.ShowConnections = a.ShowConnections
	st.ShowHubs = a.ShowHubs
	st.HighlightConnected = a.Highlight
	st.NonConnectedDim = a.NonConnectedDim
	return st
}
