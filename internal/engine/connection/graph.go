package connection

import (
	"math/rand"

	"github.com/lunarc/nebula/pkg/math"
)

// BuildGraph places hubs and unions each hub's selection into one
// graph. Disabled options yield an empty graph. Hubs are placed even
// for an empty collection (interior picks fall back to the outside
// shell); selection against zero candidates contributes nothing, so
// such a graph carries hubs but no connections. Duplicate
// particle/hub pairs across different hubs are allowed; duplicates
// for the same hub cannot occur.
func BuildGraph(points []math.Vec3, opts Options, rng *rand.Rand) Graph {
	if !opts.Enabled {
		return Graph{}
	}
	g := Graph{Hubs: PlaceHubs(points, opts.HubCount, opts.Placement, rng)}
	for hi, hub := range g.Hubs {
		sel := SelectForHub(hub, points, opts.PerHub, opts.Distribution, opts.Spread, opts.Focus, rng)
		if len(sel) < opts.PerHub {
			g.Shortfall += opts.PerHub - len(sel)
		}
		for _, pi := range sel {
			g.Connections = append(g.Connections, Connection{ParticleIndex: pi, HubIndex: hi})
		}
	}
	return g
}
