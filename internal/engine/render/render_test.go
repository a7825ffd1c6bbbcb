package render

import (
	gomath "math"
	"testing"

	"github.com/lunarc/nebula/internal/engine/connection"
	"github.com/lunarc/nebula/internal/engine/project"
)

// recordCanvas captures draw calls for assertions.
type recordCanvas struct {
	cleared bool
	rects   []recordedRect
	lines   []recordedLine
}

type recordedRect struct {
	x, y, w, h float64
	col        Color
}

type recordedLine struct {
	x1, y1, x2, y2, width float64
	col                   Color
}

func (r *recordCanvas) Size() (int, int) { return 200, 200 }
func (r *recordCanvas) Clear(Color)      { r.cleared = true }
func (r *recordCanvas) FillRect(x, y, w, h float64, col Color) {
	r.rects = append(r.rects, recordedRect{x, y, w, h, col})
}
func (r *recordCanvas) StrokeLine(x1, y1, x2, y2, width float64, col Color) {
	r.lines = append(r.lines, recordedLine{x1, y1, x2, y2, width, col})
}

func pp(x, y, scale, depth float64, idx int) project.Projected {
	return project.Projected{ScreenX: x, ScreenY: y, Scale: scale, Depth: depth, OriginalIndex: idx}
}

func plainStyle() Style {
	st := DefaultStyle()
	st.ShowConnections = false
	st.ShowHubs = false
	st.HighlightConnected = false
	return st
}

func TestDrawFrameClearsFirst(t *testing.T) {
	c := &recordCanvas{}
	DrawFrame(c, nil, nil, nil, DefaultStyle())
	if !c.cleared {
		t.Error("expected canvas cleared")
	}
}

func TestParticlesDrawnBackToFront(t *testing.T) {
	c := &recordCanvas{}
	particles := []project.Projected{
		pp(10, 0, 1, -0.5, 0), // near
		pp(20, 0, 1, 0.9, 1),  // far
		pp(30, 0, 1, 0.2, 2),  // middle
	}
	DrawFrame(c, particles, nil, nil, plainStyle())
	if len(c.rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(c.rects))
	}
	// Far (x=20) first, then middle (x=30), then near (x=10).
	wantOrder := []float64{20, 30, 10}
	for i, want := range wantOrder {
		center := c.rects[i].x + c.rects[i].w/2
		if gomath.Abs(center-want) > 1e-9 {
			t.Errorf("rect %d centered at %v, want %v", i, center, want)
		}
	}
}

func TestBehindCameraCulled(t *testing.T) {
	c := &recordCanvas{}
	particles := []project.Projected{
		pp(10, 10, 1, 0, 0),
		pp(20, 20, 0, 5, 1),     // scale 0: culled
		pp(30, 30, -0.4, 9, 2),  // negative scale: culled
	}
	DrawFrame(c, particles, nil, nil, plainStyle())
	if len(c.rects) != 1 {
		t.Fatalf("expected 1 rect after culling, got %d", len(c.rects))
	}
}

func TestLinesDrawnBeforeHubsAndParticles(t *testing.T) {
	c := &recordCanvas{}
	particles := []project.Projected{pp(50, 50, 1, 0, 0)}
	hubs := []project.Projected{pp(100, 100, 1, 0, 0)}
	graph := &connection.Graph{
		Hubs:        []connection.Hub{{X: 2}},
		Connections: []connection.Connection{{ParticleIndex: 0, HubIndex: 0}},
	}
	st := DefaultStyle()
	DrawFrame(c, particles, hubs, graph, st)
	if len(c.lines) != 1 {
		t.Fatalf("expected 1 connection line, got %d", len(c.lines))
	}
	// Hub marker + particle.
	if len(c.rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(c.rects))
	}
	// Hub marker is drawn at hub position before the particle.
	hubCenter := c.rects[0].x + c.rects[0].w/2
	if gomath.Abs(hubCenter-100) > 1e-9 {
		t.Errorf("first rect centered at %v, want the hub at 100", hubCenter)
	}
}

func TestLineSkippedWhenEndpointBehindCamera(t *testing.T) {
	c := &recordCanvas{}
	particles := []project.Projected{pp(50, 50, -1, 0, 0)}
	hubs := []project.Projected{pp(100, 100, 1, 0, 0)}
	graph := &connection.Graph{
		Hubs:        []connection.Hub{{X: 2}},
		Connections: []connection.Connection{{ParticleIndex: 0, HubIndex: 0}},
	}
	DrawFrame(c, particles, hubs, graph, DefaultStyle())
	if len(c.lines) != 0 {
		t.Errorf("expected no lines with a culled endpoint, got %d", len(c.lines))
	}
}

func TestNonConnectedDimming(t *testing.T) {
	c := &recordCanvas{}
	particles := []project.Projected{
		pp(10, 10, 1, 0, 0), // connected
		pp(20, 20, 1, 0, 1), // not connected
	}
	hubs := []project.Projected{pp(0, 0, 1, 0, 0)}
	graph := &connection.Graph{
		Hubs:        []connection.Hub{{X: 2}},
		Connections: []connection.Connection{{ParticleIndex: 0, HubIndex: 0}},
	}
	st := DefaultStyle()
	st.ShowConnections = false
	st.ShowHubs = false
	st.DepthAlpha = false
	st.NonConnectedDim = 0.4
	DrawFrame(c, particles, hubs, graph, st)
	if len(c.rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(c.rects))
	}
	var connectedAlpha, dimmedAlpha float64
	for _, r := range c.rects {
		if r.x+r.w/2 == 10 {
			connectedAlpha = r.col.A
		} else {
			dimmedAlpha = r.col.A
		}
	}
	if gomath.Abs(dimmedAlpha-connectedAlpha*0.4) > 1e-9 {
		t.Errorf("dimmed alpha %v, want %v", dimmedAlpha, connectedAlpha*0.4)
	}
}

func TestDepthSizeModulation(t *testing.T) {
	c := &recordCanvas{}
	particles := []project.Projected{pp(10, 10, 0.5, 0, 0)}
	st := plainStyle()
	st.SquareSize = 4
	st.DepthSize = true
	DrawFrame(c, particles, nil, nil, st)
	if len(c.rects) != 1 {
		t.Fatalf("expected 1 rect, got %d", len(c.rects))
	}
	if c.rects[0].w != 2 {
		t.Errorf("rect width %v, want 2 (size modulated by scale 0.5)", c.rects[0].w)
	}
}

func TestDepthAlphaFloor(t *testing.T) {
	// A tiny positive scale still renders at the particle floor.
	if a := depthAlpha(-10, particleFloor); a != particleFloor {
		t.Errorf("depthAlpha floor = %v, want %v", a, particleFloor)
	}
	if a := depthAlpha(2, particleFloor); a != 1 {
		t.Errorf("depthAlpha cap = %v, want 1", a)
	}
	if a := depthAlpha(0.5, particleFloor); gomath.Abs(a-0.65) > 1e-12 {
		t.Errorf("depthAlpha(0.5) = %v, want 0.65", a)
	}
}

func TestParseHexColor(t *testing.T) {
	fallback := Color{R: 1, A: 1}
	got := ParseHexColor("#ff0000", fallback)
	if got.R != 1 || got.G != 0 || got.B != 0 || got.A != 1 {
		t.Errorf("ParseHexColor(#ff0000) = %v", got)
	}
	got = ParseHexColor("#00ff0080", fallback)
	if got.G != 1 || gomath.Abs(got.A-128.0/255) > 1e-9 {
		t.Errorf("ParseHexColor(#00ff0080) = %v", got)
	}
	got = ParseHexColor("#fff", fallback)
	if got.R != 1 || got.G != 1 || got.B != 1 {
		t.Errorf("ParseHexColor(#fff) = %v", got)
	}
	for _, bad := range []string{"", "red", "#xyz", "#12345"} {
		if got := ParseHexColor(bad, fallback); got != fallback {
			t.Errorf("ParseHexColor(%q) = %v, want fallback", bad, got)
		}
	}
}

func TestGGCanvasSize(t *testing.T) {
	c := NewGGCanvas(64, 48)
	defer c.Close()
	w, h := c.Size()
	if w != 64 || h != 48 {
		t.Errorf("Size() = %d,%d, want 64,48", w, h)
	}
	// A smoke pass through the real surface.
	DrawFrame(c, []project.Projected{pp(32, 24, 1, 0, 0)}, nil, nil, DefaultStyle())
}
