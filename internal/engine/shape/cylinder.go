package shape

import (
	gomath "math"

	"github.com/lunarc/nebula/pkg/math"
)

// Cylinder proportions.
const (
	cylRadius = 0.6
	cylHalfH  = 0.9
	capShare  = 0.15 // share of points on each end cap; the lateral surface takes the rest
)

// Cylinder places 70% of the points on a lattice over the lateral
// surface and 15% on each end cap in a sunflower spiral. Deterministic;
// may return slightly fewer than count points from integer splits.
func Cylinder(count int) []math.Vec3 {
	perCap := int(float64(count) * capShare)
	nLateral := count - 2*perCap

	pts := make([]math.Vec3, 0, count)

	// Lateral lattice with column/row aspect matching circumference/height.
	aspect := (2 * gomath.Pi * cylRadius) / (2 * cylHalfH)
	cols := int(gomath.Ceil(gomath.Sqrt(float64(nLateral) * aspect)))
	if cols < 1 {
		cols = 1
	}
	rows := (nLateral + cols - 1) / cols
	for i := 0; i < cols && len(pts) < nLateral; i++ {
		angle := 2 * gomath.Pi * float64(i) / float64(cols)
		for j := 0; j < rows && len(pts) < nLateral; j++ {
			y := -cylHalfH
			if rows > 1 {
				y += 2 * cylHalfH * float64(j) / float64(rows-1)
			}
			pts = append(pts, math.Vec3{
				X: cylRadius * gomath.Cos(angle),
				Y: y,
				Z: cylRadius * gomath.Sin(angle),
			})
		}
	}

	// End caps: sunflower spiral fill.
	for _, y := range []float64{cylHalfH, -cylHalfH} {
		for i := 0; i < perCap; i++ {
			t := float64(i) / float64(perCap)
			r := cylRadius * gomath.Sqrt(t)
			angle := t * 2 * gomath.Pi * 10
			pts = append(pts, math.Vec3{
				X: r * gomath.Cos(angle),
				Y: y,
				Z: r * gomath.Sin(angle),
			})
		}
	}
	return pts
}
