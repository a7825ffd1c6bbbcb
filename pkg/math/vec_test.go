package math

import (
	gomath "math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := 5.0
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999999 || l > 1.000001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	got := (Vec2{}).Normalize()
	if got != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1, 2, 8}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec3.Distance() = %v, want 5", got)
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	v := Vec3{1, 0, 0}
	got := v.RotateY(gomath.Pi / 2)
	if gomath.Abs(got.X) > 1e-12 || gomath.Abs(got.Z+1) > 1e-12 {
		t.Errorf("RotateY(pi/2) of +X = %v, want (0,0,-1)", got)
	}
}

func TestRotateXPreservesX(t *testing.T) {
	v := Vec3{0.5, 0.25, -0.75}
	got := v.RotateX(1.234)
	if got.X != v.X {
		t.Errorf("RotateX changed X: %v -> %v", v.X, got.X)
	}
	if gomath.Abs(got.Length()-v.Length()) > 1e-12 {
		t.Errorf("RotateX changed length: %v -> %v", v.Length(), got.Length())
	}
}

func TestRotateXYZOrder(t *testing.T) {
	v := Vec3{0.3, -0.1, 0.7}
	want := v.RotateX(0.2).RotateY(-0.4).RotateZ(1.1)
	got := v.RotateXYZ(0.2, -0.4, 1.1)
	if got != want {
		t.Errorf("RotateXYZ = %v, want sequential result %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
}
