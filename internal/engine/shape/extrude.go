package shape

import (
	gomath "math"
	"math/rand"

	"github.com/lunarc/nebula/internal/engine/outline"
	"github.com/lunarc/nebula/pkg/math"
)

// rejectionBudgetFactor caps interior rejection sampling at
// faceCount*20 attempts per face; exhaustion degrades to fewer points.
const rejectionBudgetFactor = 20

// wallLayers is the number of z slices outline boundary points are
// replicated across.
const wallLayers = 3

// SVGExtrude extrudes a 2D outline into a slab of particles. In
// snap-to-grid mode a regular lattice covers the outline's bounding
// box and interior cells are emitted on the front and back faces; in
// free mode boundary samples form the walls and rejection-sampled
// interior points fill the faces. A nil or degenerate outline yields a
// single origin point, never an error.
func SVGExtrude(count int, p Params, rng *rand.Rand) []math.Vec3 {
	o := p.Outline
	if o == nil || len(o.Points) < 3 {
		return []math.Vec3{{}}
	}
	depth := p.ExtrudeDepth
	if depth <= 0 {
		depth = 0.4
	}
	front := depth / 2
	back := -depth / 2

	if p.SnapToGrid {
		return extrudeGrid(count, o, front, back)
	}
	return extrudeFree(count, o, front, back, rng)
}

func extrudeGrid(count int, o *outline.Outline, front, back float64) []math.Vec3 {
	min, max := o.Bounds()
	gridN := int(gomath.Ceil(gomath.Sqrt(float64(count) / 2)))
	if gridN < 1 {
		gridN = 1
	}
	stepX := (max.X - min.X) / float64(gridN)
	stepY := (max.Y - min.Y) / float64(gridN)

	pts := make([]math.Vec3, 0, count)
	for i := 0; i < gridN; i++ {
		cx := min.X + (float64(i)+0.5)*stepX
		for j := 0; j < gridN; j++ {
			cy := min.Y + (float64(j)+0.5)*stepY
			if !o.Contains(cx, cy) {
				continue
			}
			pts = append(pts, math.Vec3{X: cx, Y: cy, Z: front})
			pts = append(pts, math.Vec3{X: cx, Y: cy, Z: back})
		}
	}
	// Boundary points replicated across z layers stitch the faces.
	for layer := 0; layer < wallLayers; layer++ {
		z := back + (front-back)*float64(layer)/float64(wallLayers-1)
		for _, bp := range o.Points {
			pts = append(pts, math.Vec3{X: bp.X, Y: bp.Y, Z: z})
		}
	}
	if len(pts) > count {
		pts = pts[:count]
	}
	return pts
}

func extrudeFree(count int, o *outline.Outline, front, back float64, rng *rand.Rand) []math.Vec3 {
	faceCount := count * 30 / 100
	wallCount := count - 2*faceCount

	pts := make([]math.Vec3, 0, count)

	// Walls: boundary samples swept across z layers.
	n := len(o.Points)
	for i := 0; i < wallCount; i++ {
		bp := o.Points[i%n]
		layer := (i / n) % wallLayers
		z := back + (front-back)*float64(layer)/float64(wallLayers-1)
		pts = append(pts, math.Vec3{X: bp.X, Y: bp.Y, Z: z})
	}

	// Faces: rejection-sample interior points within the bounding box.
	min, max := o.Bounds()
	for _, z := range []float64{front, back} {
		budget := faceCount * rejectionBudgetFactor
		placed := 0
		for placed < faceCount && budget > 0 {
			budget--
			x := min.X + rng.Float64()*(max.X-min.X)
			y := min.Y + rng.Float64()*(max.Y-min.Y)
			if !o.Contains(x, y) {
				continue
			}
			pts = append(pts, math.Vec3{X: x, Y: y, Z: z})
			placed++
		}
	}
	return pts
}
