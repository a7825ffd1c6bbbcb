// Package shape generates 3D particle distributions in a fixed family
// of shapes. Every generator returns a fresh collection of points that
// roughly fills [-1,1]³; collections may come up short of the requested
// count for generators that tile in discrete units, and callers are
// expected to handle that rather than treat it as an error.
package shape

import (
	"fmt"
	"math/rand"

	"github.com/lunarc/nebula/internal/engine/outline"
	"github.com/lunarc/nebula/pkg/math"
)

// Kind identifies one of the supported particle distributions.
type Kind int

const (
	KindSphere Kind = iota
	KindCube
	KindGalaxy
	KindSpiralGalaxy
	KindTorus
	KindCylinder
	KindHelix
	KindSVGExtrude
)

var kindNames = map[Kind]string{
	KindSphere:       "sphere",
	KindCube:         "cube",
	KindGalaxy:       "galaxy",
	KindSpiralGalaxy: "spiral-galaxy",
	KindTorus:        "torus",
	KindCylinder:     "cylinder",
	KindHelix:        "helix",
	KindSVGExtrude:   "svg-extrude",
}

// String returns the config-surface name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a config string to a Kind. ok is false for unknown
// names; the engine renders an empty collection in that case rather
// than failing the frame.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Params carries the shape-specific generation options.
type Params struct {
	// SpiralArms is the arm count for the spiral galaxy.
	SpiralArms int
	// ExtrudeDepth is the z extent of the SVG extrusion.
	ExtrudeDepth float64
	// SnapToGrid selects the lattice mode of the SVG extrusion.
	SnapToGrid bool
	// Outline is the extrusion cross-section; nil degrades to a
	// single origin point.
	Outline *outline.Outline
}

// Generate produces at most count points of the given kind. count must
// be positive; a non-positive count is an invariant violation in the
// calling layer and panics. rng drives the stochastic generators and
// must not be nil for them; deterministic kinds ignore it.
func Generate(kind Kind, count int, p Params, rng *rand.Rand) []math.Vec3 {
	if count < 1 {
		panic(fmt.Sprintf("shape: non-positive count %d", count))
	}
	switch kind {
	case KindSphere:
		return Sphere(count)
	case KindCube:
		return Cube(count)
	case KindGalaxy:
		return Galaxy(count, rng)
	case KindSpiralGalaxy:
		return SpiralGalaxy(count, p.SpiralArms, rng)
	case KindTorus:
		return Torus(count)
	case KindCylinder:
		return Cylinder(count)
	case KindHelix:
		return Helix(count)
	case KindSVGExtrude:
		return SVGExtrude(count, p, rng)
	default:
		return nil
	}
}
