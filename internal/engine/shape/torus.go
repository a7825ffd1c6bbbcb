package shape

import (
	gomath "math"

	"github.com/lunarc/nebula/pkg/math"
)

// Torus radii.
const (
	torusMajor = 0.7
	torusMinor = 0.3
)

// Torus lays points on a cols×rows lattice over the torus surface,
// with the lattice aspect matching the major/minor radius ratio, and
// stops once count points are emitted. Deterministic.
func Torus(count int) []math.Vec3 {
	rows := int(gomath.Ceil(gomath.Sqrt(float64(count) * torusMinor / torusMajor)))
	if rows < 1 {
		rows = 1
	}
	cols := (count + rows - 1) / rows

	pts := make([]math.Vec3, 0, count)
	for i := 0; i < cols; i++ {
		u := 2 * gomath.Pi * float64(i) / float64(cols)
		for j := 0; j < rows; j++ {
			if len(pts) == count {
				return pts
			}
			v := 2 * gomath.Pi * float64(j) / float64(rows)
			ring := torusMajor + torusMinor*gomath.Cos(v)
			pts = append(pts, math.Vec3{
				X: ring * gomath.Cos(u),
				Y: torusMinor * gomath.Sin(v),
				Z: ring * gomath.Sin(u),
			})
		}
	}
	return pts
}
