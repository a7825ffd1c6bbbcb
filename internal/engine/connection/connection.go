// Package connection places hub anchor points around a particle
// collection and selects, per hub, a subset of particles to highlight
// with connection lines.
package connection

import (
	"fmt"

	"github.com/lunarc/nebula/pkg/math"
)

// Placement controls where hubs are derived from.
type Placement int

const (
	// PlacementMixed alternates inside and outside per hub index.
	PlacementMixed Placement = iota
	// PlacementInside derives hubs from existing particles pulled
	// toward the shape center.
	PlacementInside
	// PlacementOutside samples hubs on a shell around the shape.
	PlacementOutside
)

// ParsePlacement maps a config string to a Placement; unknown names
// fall back to mixed.
func ParsePlacement(s string) Placement {
	switch s {
	case "inside":
		return PlacementInside
	case "outside":
		return PlacementOutside
	default:
		return PlacementMixed
	}
}

// Distribution selects the per-hub particle selection policy.
type Distribution int

const (
	DistNearest Distribution = iota
	DistRandom
	DistWeighted
	DistStratified
)

// ParseDistribution maps a config string to a Distribution; unknown
// names fall back to nearest.
func ParseDistribution(s string) Distribution {
	switch s {
	case "random":
		return DistRandom
	case "weighted":
		return DistWeighted
	case "stratified":
		return DistStratified
	default:
		return DistNearest
	}
}

// Hub is an anchor point for connection lines. It has no identity
// beyond its index in the graph's hub sequence.
type Hub = math.Vec3

// Connection pairs a particle with a hub, both by ordinal index. The
// particle index references the collection the graph was built from
// and becomes stale if that collection is regenerated.
type Connection struct {
	ParticleIndex int
	HubIndex      int
}

// Graph is the hub/connection set built for one particle collection.
// Shortfall counts requested connection slots that could not be
// filled (perHub exceeding the available candidates, summed over
// hubs); rendering ignores it, callers that care can inspect it.
type Graph struct {
	Hubs        []Hub
	Connections []Connection
	Shortfall   int
}

// Options configures graph building. Values are assumed to be
// normalized by the configuration layer: counts non-negative, spread
// and focus in [0,1].
type Options struct {
	Enabled      bool
	HubCount     int
	PerHub       int
	Placement    Placement
	Distribution Distribution
	Spread       float64
	Focus        float64
}

// Validate panics when a connection references an out-of-range
// particle. A stale or corrupt index is an invariant violation in the
// calling layer, not a degraded input.
func (g *Graph) Validate(pointCount int) {
	for _, c := range g.Connections {
		if c.HubIndex < 0 || c.HubIndex >= len(g.Hubs) {
			panic(fmt.Sprintf("connection: hub index %d out of range [0,%d)", c.HubIndex, len(g.Hubs)))
		}
		if c.ParticleIndex < 0 || c.ParticleIndex >= pointCount {
			panic(fmt.Sprintf("connection: particle index %d out of range [0,%d)", c.ParticleIndex, pointCount))
		}
	}
}

// ConnectedSet returns the set of particle indices that appear in at
// least one connection. The renderer uses it for highlight dimming.
func (g *Graph) ConnectedSet() map[int]bool {
	set := make(map[int]bool, len(g.Connections))
	for _, c := range g.Connections {
		set[c.ParticleIndex] = true
	}
	return set
}
