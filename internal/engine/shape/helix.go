package shape

import (
	gomath "math"

	"github.com/lunarc/nebula/pkg/math"
)

// Helix geometry.
const (
	helixTurns  = 4
	helixRadius = 0.7
)

// Helix builds two congruent strands offset by π, each a parametric
// helix of four turns spanning the full y range. Deterministic.
func Helix(count int) []math.Vec3 {
	perStrand := count / 2
	first := count - perStrand // odd counts put the extra point on strand 0

	pts := make([]math.Vec3, 0, count)
	for strand := 0; strand < 2; strand++ {
		n := perStrand
		offset := gomath.Pi
		if strand == 0 {
			n = first
			offset = 0
		}
		denom := float64(n - 1)
		if n <= 1 {
			denom = 1
		}
		for i := 0; i < n; i++ {
			t := float64(i) / denom
			angle := offset + t*helixTurns*2*gomath.Pi
			pts = append(pts, math.Vec3{
				X: helixRadius * gomath.Cos(angle),
				Y: -1 + 2*t,
				Z: helixRadius * gomath.Sin(angle),
			})
		}
	}
	return pts
}
