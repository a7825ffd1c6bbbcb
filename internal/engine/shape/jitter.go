package shape

import (
	"math/rand"

	"github.com/lunarc/nebula/pkg/math"
)

// Jitter returns a copy of points with independent uniform noise in
// [-amount*0.1, amount*0.1] added to each axis. The input is never
// mutated. amount ≤ 0 returns an unjittered copy; callers normally
// skip the call entirely in that case.
func Jitter(points []math.Vec3, amount float64, rng *rand.Rand) []math.Vec3 {
	out := make([]math.Vec3, len(points))
	if amount <= 0 {
		copy(out, points)
		return out
	}
	scale := amount * 0.1
	for i, p := range points {
		out[i] = math.Vec3{
			X: p.X + (rng.Float64()*2-1)*scale,
			Y: p.Y + (rng.Float64()*2-1)*scale,
			Z: p.Z + (rng.Float64()*2-1)*scale,
		}
	}
	return out
}
