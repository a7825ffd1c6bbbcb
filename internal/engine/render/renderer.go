package render

import (
	"sort"

	"github.com/lunarc/nebula/internal/engine/connection"
	"github.com/lunarc/nebula/internal/engine/project"
)

// DrawFrame composites one frame: connection lines first, then hub
// markers, then particles depth-sorted back-to-front (painter's
// algorithm, no z-buffer). Points with non-positive scale are behind
// the camera and culled. particles must be in original index order so
// connection particle indices resolve directly; hubs must be the
// graph's hub positions projected through the same camera.
func DrawFrame(c Canvas, particles, hubs []project.Projected, graph *connection.Graph, st Style) {
	c.Clear(st.Background)

	if graph != nil && st.ShowConnections {
		drawConnections(c, particles, hubs, graph, st)
	}
	if st.ShowHubs {
		drawHubs(c, hubs, st)
	}
	drawParticles(c, particles, graph, st)
}

func drawConnections(c Canvas, particles, hubs []project.Projected, graph *connection.Graph, st Style) {
	for _, conn := range graph.Connections {
		h := hubs[conn.HubIndex]
		p := particles[conn.ParticleIndex]
		if h.Scale <= 0 || p.Scale <= 0 {
			continue
		}
		avg := (h.Scale + p.Scale) / 2
		col := st.Line
		if st.DepthAlpha {
			col = col.WithAlpha(col.A * depthAlpha(avg, particleFloor))
		}
		width := st.LineWidth
		if st.DepthSize {
			width *= avg
		}
		c.StrokeLine(p.ScreenX, p.ScreenY, h.ScreenX, h.ScreenY, width, col)
	}
}

func drawHubs(c Canvas, hubs []project.Projected, st Style) {
	for _, h := range hubs {
		if h.Scale <= 0 {
			continue
		}
		size := st.SquareSize * hubMarkerFactor
		if st.DepthSize {
			size *= h.Scale
		}
		col := st.Hub
		if st.DepthAlpha {
			col = col.WithAlpha(col.A * depthAlpha(h.Scale, hubFloor))
		}
		c.FillRect(h.ScreenX-size/2, h.ScreenY-size/2, size, size, col)
	}
}

func drawParticles(c Canvas, particles []project.Projected, graph *connection.Graph, st Style) {
	// Painter's algorithm: sort a copy descending by depth so the
	// farthest particles are drawn first.
	ordered := make([]project.Projected, len(particles))
	copy(ordered, particles)
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].Depth > ordered[b].Depth })

	var connected map[int]bool
	highlight := st.HighlightConnected && graph != nil && len(graph.Connections) > 0
	if highlight {
		connected = graph.ConnectedSet()
	}

	for _, p := range ordered {
		if p.Scale <= 0 {
			continue
		}
		size := st.SquareSize
		if st.DepthSize {
			size *= p.Scale
		}
		col := st.Particle
		alpha := col.A
		if st.DepthAlpha {
			alpha *= depthAlpha(p.Scale, particleFloor)
		}
		if highlight && !connected[p.OriginalIndex] {
			col = st.NonConnected
			alpha *= st.NonConnectedDim
		}
		c.FillRect(p.ScreenX-size/2, p.ScreenY-size/2, size, size, col.WithAlpha(alpha))
	}
}
