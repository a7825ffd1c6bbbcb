// Package outline extracts normalized 2D outlines from vector sources.
// An outline is an ordered loop of boundary samples in [-1,1]² plus a
// containment test; the SVG-extrude shape generator consumes both.
package outline

import "github.com/lunarc/nebula/pkg/math"

// Outline is an ordered loop of boundary points normalized to [-1,1]²
// with the source's aspect ratio preserved.
type Outline struct {
	Points []math.Vec2
}

// Contains reports whether (x, y) lies inside the outline polygon,
// using the even-odd ray-cast rule.
func (o *Outline) Contains(x, y float64) bool {
	n := len(o.Points)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi := o.Points[i]
		pj := o.Points[j]
		if (pi.Y > y) != (pj.Y > y) {
			xCross := pj.X + (y-pj.Y)/(pi.Y-pj.Y)*(pi.X-pj.X)
			if x < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Bounds returns the axis-aligned bounding box of the outline.
// Degenerate outlines report a zero box at the origin.
func (o *Outline) Bounds() (min, max math.Vec2) {
	if len(o.Points) == 0 {
		return math.Vec2{}, math.Vec2{}
	}
	min = o.Points[0]
	max = o.Points[0]
	for _, p := range o.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// normalize rescales points into [-1,1]² around the bounding-box center,
// preserving aspect ratio. Called once at parse time.
func normalize(pts []math.Vec2) []math.Vec2 {
	if len(pts) == 0 {
		return pts
	}
	o := Outline{Points: pts}
	min, max := o.Bounds()
	cx := (min.X + max.X) / 2
	cy := (min.Y + max.Y) / 2
	half := (max.X - min.X) / 2
	if h := (max.Y - min.Y) / 2; h > half {
		half = h
	}
	if half == 0 {
		half = 1
	}
	out := make([]math.Vec2, len(pts))
	for i, p := range pts {
		// SVG y grows downward; flip so the outline is upright.
		out[i] = math.Vec2{X: (p.X - cx) / half, Y: -(p.Y - cy) / half}
	}
	return out
}
