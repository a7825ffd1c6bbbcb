package math

import "math"

// RotateX rotates v around the X axis. angle is in radians.
func (v Vec3) RotateX(angle float64) Vec3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates v around the Y axis. angle is in radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ rotates v around the Z axis. angle is in radians.
func (v Vec3) RotateZ(angle float64) Vec3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// RotateXYZ applies the three axis rotations in order: X, then Y, then Z.
func (v Vec3) RotateXYZ(ax, ay, az float64) Vec3 {
	return v.RotateX(ax).RotateY(ay).RotateZ(az)
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
