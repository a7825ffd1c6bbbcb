package project

import (
	gomath "math"
	"testing"

	"github.com/lunarc/nebula/internal/engine/shape"
	"github.com/lunarc/nebula/pkg/math"
)

func TestOrthographicScaleIsOne(t *testing.T) {
	points := shape.Sphere(100)
	cam := Camera{Lens: LensOrthographic, Spacing: 1}
	out := Project(points, Rotation{X: 0.3, Y: 1.1, Z: -0.4}, cam, math.Vec2{X: 400, Y: 300}, 200)
	for i, p := range out {
		if p.Scale != 1 {
			t.Fatalf("point %d has scale %v, want 1", i, p.Scale)
		}
	}
}

func TestPerspectiveOriginMapsToCenter(t *testing.T) {
	cam := Camera{Lens: LensPerspective, FocalMm: 50, Spacing: 1}
	center := math.Vec2{X: 320, Y: 240}
	out := Project([]math.Vec3{{}}, Rotation{}, cam, center, 150)
	if len(out) != 1 {
		t.Fatalf("expected 1 projected point, got %d", len(out))
	}
	if out[0].ScreenX != center.X || out[0].ScreenY != center.Y {
		t.Errorf("origin projected to (%v,%v), want center (%v,%v)",
			out[0].ScreenX, out[0].ScreenY, center.X, center.Y)
	}
	if out[0].Scale != 1 {
		t.Errorf("origin scale = %v, want 1", out[0].Scale)
	}
}

func TestPerspectiveDistanceMapping(t *testing.T) {
	if d := PerspectiveDistance(24); d != 12 {
		t.Errorf("PerspectiveDistance(24) = %v, want 12", d)
	}
	if d := PerspectiveDistance(200); d != 500 {
		t.Errorf("PerspectiveDistance(200) = %v, want 500", d)
	}
	// Clamped outside the supported range.
	if d := PerspectiveDistance(8); d != 12 {
		t.Errorf("PerspectiveDistance(8) = %v, want 12", d)
	}
	if d := PerspectiveDistance(1000); d != 500 {
		t.Errorf("PerspectiveDistance(1000) = %v, want 500", d)
	}
	if PerspectiveDistance(50) >= PerspectiveDistance(100) {
		t.Error("perspective distance must grow with focal length")
	}
}

func TestPerspectiveNearPointsLarger(t *testing.T) {
	cam := Camera{Lens: LensPerspective, FocalMm: 24, Spacing: 1}
	pts := []math.Vec3{{Z: -0.9}, {Z: 0.9}}
	out := Project(pts, Rotation{}, cam, math.Vec2{}, 100)
	if out[0].Scale <= out[1].Scale {
		t.Errorf("near point scale %v not larger than far point scale %v", out[0].Scale, out[1].Scale)
	}
	if out[0].Depth >= out[1].Depth {
		t.Errorf("near depth %v not smaller than far depth %v", out[0].Depth, out[1].Depth)
	}
}

func TestBehindCameraScaleNonPositive(t *testing.T) {
	cam := Camera{Lens: LensPerspective, FocalMm: 24, Spacing: 1}
	pts := []math.Vec3{{Z: -20}} // well behind the 12-unit camera plane
	out := Project(pts, Rotation{}, cam, math.Vec2{}, 100)
	if out[0].Scale > 0 {
		t.Errorf("behind-camera scale = %v, want non-positive", out[0].Scale)
	}
}

func TestRotationOrderXThenYThenZ(t *testing.T) {
	p := math.Vec3{X: 0.2, Y: -0.7, Z: 0.4}
	rot := Rotation{X: 0.5, Y: -1.2, Z: 2.0}
	want := p.RotateX(rot.X).RotateY(rot.Y).RotateZ(rot.Z)
	cam := Camera{Lens: LensOrthographic, Spacing: 1}
	out := Project([]math.Vec3{p}, rot, cam, math.Vec2{}, 1)
	if gomath.Abs(out[0].ScreenX-want.X) > 1e-12 || gomath.Abs(out[0].ScreenY-want.Y) > 1e-12 {
		t.Errorf("projected (%v,%v), want rotated (%v,%v)", out[0].ScreenX, out[0].ScreenY, want.X, want.Y)
	}
	if gomath.Abs(out[0].Depth-want.Z) > 1e-12 {
		t.Errorf("depth %v, want rotated z %v", out[0].Depth, want.Z)
	}
}

func TestSpacingScalesPositions(t *testing.T) {
	cam := Camera{Lens: LensOrthographic, Spacing: 2}
	out := Project([]math.Vec3{{X: 1}}, Rotation{}, cam, math.Vec2{}, 10)
	if out[0].ScreenX != 20 {
		t.Errorf("spacing 2 projected x = %v, want 20", out[0].ScreenX)
	}
}

func TestOriginalIndexThreads(t *testing.T) {
	points := shape.Cube(24)
	cam := Camera{Lens: LensOrthographic, Spacing: 1}
	out := Project(points, Rotation{}, cam, math.Vec2{}, 1)
	for i, p := range out {
		if p.OriginalIndex != i {
			t.Fatalf("projected %d carries original index %d", i, p.OriginalIndex)
		}
	}
}

func TestEndToEndCubeBoundingBox(t *testing.T) {
	points := shape.Generate(shape.KindCube, 12, shape.Params{}, nil)
	if len(points) != 12 {
		t.Fatalf("expected 12 cube points, got %d", len(points))
	}
	center := math.Vec2{X: 100, Y: 100}
	const worldScale = 40.0
	cam := Camera{Lens: LensOrthographic, Spacing: 1}
	out := Project(points, Rotation{}, cam, center, worldScale)

	minX, minY := gomath.Inf(1), gomath.Inf(1)
	maxX, maxY := gomath.Inf(-1), gomath.Inf(-1)
	for _, p := range out {
		minX = gomath.Min(minX, p.ScreenX)
		maxX = gomath.Max(maxX, p.ScreenX)
		minY = gomath.Min(minY, p.ScreenY)
		maxY = gomath.Max(maxY, p.ScreenY)
	}
	const tol = 1e-9
	if gomath.Abs((maxX+minX)/2-center.X) > tol || gomath.Abs((maxY+minY)/2-center.Y) > tol {
		t.Errorf("bounding box center (%v,%v), want (%v,%v)", (maxX+minX)/2, (maxY+minY)/2, center.X, center.Y)
	}
	if gomath.Abs((maxX-minX)-2*worldScale) > tol {
		t.Errorf("bounding box width %v, want %v", maxX-minX, 2*worldScale)
	}
	if gomath.Abs((maxY-minY)-2*worldScale) > tol {
		t.Errorf("bounding box height %v, want %v", maxY-minY, 2*worldScale)
	}
}
