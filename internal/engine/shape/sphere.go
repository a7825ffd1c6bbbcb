package shape

import (
	gomath "math"

	"github.com/lunarc/nebula/pkg/math"
)

// goldenAngle is the azimuth step of the Fibonacci spiral, in radians.
const goldenAngle = gomath.Pi * (3 - 2.2360679774997896) // π(3-√5)

// Sphere distributes exactly count points evenly over the unit sphere
// surface using the golden-angle spiral. Deterministic.
func Sphere(count int) []math.Vec3 {
	pts := make([]math.Vec3, count)
	denom := float64(count - 1)
	if count == 1 {
		denom = 1
	}
	for i := 0; i < count; i++ {
		y := 1 - 2*float64(i)/denom
		r := gomath.Sqrt(1 - y*y)
		az := float64(i) * goldenAngle
		pts[i] = math.Vec3{
			X: gomath.Cos(az) * r,
			Y: y,
			Z: gomath.Sin(az) * r,
		}
	}
	return pts
}
