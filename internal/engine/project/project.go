// Package project maps 3D particles to 2D screen space through a
// rotation and a perspective or orthographic camera model.
package project

import (
	"github.com/lunarc/nebula/pkg/math"
)

// Lens is the camera projection model.
type Lens int

const (
	// LensPerspective applies distance-based foreshortening.
	LensPerspective Lens = iota
	// LensOrthographic projects with no foreshortening.
	LensOrthographic
)

// ParseLens maps a config string to a Lens; unknown names fall back
// to perspective.
func ParseLens(s string) Lens {
	if s == "orthographic" {
		return LensOrthographic
	}
	return LensPerspective
}

// Focal length mapping. The focal length in millimetres maps
// non-linearly onto the perspective distance: wide angle (24mm) gives
// a short distance and strong distortion, telephoto (200mm) is
// near-orthographic.
const (
	FocalMin = 24.0
	FocalMax = 200.0

	perspDistMin   = 12.0
	perspDistRange = 488.0
)

// PerspectiveDistance converts a focal length to the camera's
// perspective distance. The input is clamped to [24,200].
func PerspectiveDistance(focalMm float64) float64 {
	t := (math.Clamp(focalMm, FocalMin, FocalMax) - FocalMin) / (FocalMax - FocalMin)
	return perspDistMin + t*perspDistRange
}

// Camera holds the per-frame projection parameters.
type Camera struct {
	Lens    Lens
	FocalMm float64 // perspective only; ignored for orthographic
	Spacing float64 // world-space scale applied before rotation
}

// Rotation is the Euler rotation applied to every point, in radians,
// composed in the fixed order X, then Y, then Z.
type Rotation struct {
	X, Y, Z float64
}

// Projected is one particle mapped to screen space. It is derived
// state, recomputed every frame and never persisted.
type Projected struct {
	ScreenX, ScreenY float64
	Scale            float64
	Depth            float64
	OriginalIndex    int
}

// Project maps points to screen space. center is the viewport center
// in pixels and worldScale converts rotated world units to pixels.
// Depth is the rotated Z, used for back-to-front ordering; Scale is
// the perspective shrink factor (1 for orthographic) and goes
// non-positive for points at or behind the camera plane, which the
// renderer culls.
func Project(points []math.Vec3, rot Rotation, cam Camera, center math.Vec2, worldScale float64) []Projected {
	out := make([]Projected, len(points))
	spacing := cam.Spacing
	if spacing == 0 {
		spacing = 1
	}
	persp := cam.Lens == LensPerspective
	dist := PerspectiveDistance(cam.FocalMm)

	for i, p := range points {
		r := p.Scale(spacing).RotateXYZ(rot.X, rot.Y, rot.Z)
		scale := 1.0
		if persp {
			if dz := dist + r.Z; dz > 1e-9 {
				scale = dist / dz
			} else {
				scale = 0 // at or behind the camera plane
			}
		}
		out[i] = Projected{
			ScreenX:       center.X + r.X*scale*worldScale,
			ScreenY:       center.Y + r.Y*scale*worldScale,
			Scale:         scale,
			Depth:         r.Z,
			OriginalIndex: i,
		}
	}
	return out
}
