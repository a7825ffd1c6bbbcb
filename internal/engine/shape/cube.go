package shape

import (
	gomath "math"

	"github.com/lunarc/nebula/pkg/math"
)

// Cube tiles the six faces of the [-1,1] cube with a square grid and
// truncates to exactly count points. Deterministic.
func Cube(count int) []math.Vec3 {
	perFace := (count + 5) / 6
	side := int(gomath.Ceil(gomath.Sqrt(float64(perFace))))
	if side < 1 {
		side = 1
	}

	coord := func(i int) float64 {
		if side == 1 {
			return 0
		}
		return -1 + 2*float64(i)/float64(side-1)
	}

	pts := make([]math.Vec3, 0, count)
	for face := 0; face < 6; face++ {
		for i := 0; i < side; i++ {
			for j := 0; j < side; j++ {
				if len(pts) == count {
					return pts
				}
				u, v := coord(i), coord(j)
				switch face {
				case 0:
					pts = append(pts, math.Vec3{X: 1, Y: u, Z: v})
				case 1:
					pts = append(pts, math.Vec3{X: -1, Y: u, Z: v})
				case 2:
					pts = append(pts, math.Vec3{X: u, Y: 1, Z: v})
				case 3:
					pts = append(pts, math.Vec3{X: u, Y: -1, Z: v})
				case 4:
					pts = append(pts, math.Vec3{X: u, Y: v, Z: 1})
				case 5:
					pts = append(pts, math.Vec3{X: u, Y: v, Z: -1})
				}
			}
		}
	}
	return pts
}
