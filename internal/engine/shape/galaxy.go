package shape

import (
	gomath "math"
	"math/rand"

	"github.com/lunarc/nebula/pkg/math"
)

// noise returns a roughly bell-shaped sample in [-1,1], built from
// three uniform draws.
func noise(rng *rand.Rand) float64 {
	return (rng.Float64()+rng.Float64()+rng.Float64())*2/3 - 1
}

// Galaxy scatters count points along a three-armed spiral with angular
// and radial jitter and a thin vertical spread.
func Galaxy(count int, rng *rand.Rand) []math.Vec3 {
	const arms = 3
	pts := make([]math.Vec3, count)
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count)
		armOffset := float64(i%arms) * 2 * gomath.Pi / arms

		r := 0.1 + 0.9*t + noise(rng)*0.06
		angle := armOffset + t*3.5*gomath.Pi + noise(rng)*0.25
		pts[i] = math.Vec3{
			X: gomath.Cos(angle) * r,
			Y: noise(rng) * 0.08,
			Z: gomath.Sin(angle) * r,
		}
	}
	return pts
}

// Population split of the spiral galaxy.
const (
	bulgeShare = 0.15
	armShare   = 0.65
)

// SpiralGalaxy mixes three populations: a spherical central bulge,
// logarithmically wound arms, and a flat outer disk. arms is clamped
// to at least 1.
func SpiralGalaxy(count, arms int, rng *rand.Rand) []math.Vec3 {
	if arms < 1 {
		arms = 1
	}
	nBulge := int(float64(count) * bulgeShare)
	nArms := int(float64(count) * armShare)
	nDisk := count - nBulge - nArms

	pts := make([]math.Vec3, 0, count)

	// Bulge: cube-root radius for uniform volumetric density.
	for i := 0; i < nBulge; i++ {
		r := 0.3 * gomath.Cbrt(rng.Float64())
		cosT := 2*rng.Float64() - 1
		sinT := gomath.Sqrt(1 - cosT*cosT)
		phi := 2 * gomath.Pi * rng.Float64()
		pts = append(pts, math.Vec3{
			X: r * sinT * gomath.Cos(phi),
			Y: r * cosT,
			Z: r * sinT * gomath.Sin(phi),
		})
	}

	// Arms: log-wound angle plus jitter that widens with radius.
	for i := 0; i < nArms; i++ {
		armOffset := float64(i%arms) * 2 * gomath.Pi / float64(arms)
		r := 0.15 + 0.85*rng.Float64()
		angle := armOffset + 1.8*gomath.Log(1+8*r) + noise(rng)*0.3
		r += noise(rng) * 0.05
		pts = append(pts, math.Vec3{
			X: gomath.Cos(angle) * r,
			Y: noise(rng) * 0.04,
			Z: gomath.Sin(angle) * r,
		})
	}

	// Disk: square-root radius for uniform areal density.
	for i := 0; i < nDisk; i++ {
		r := gomath.Sqrt(rng.Float64())
		angle := 2 * gomath.Pi * rng.Float64()
		pts = append(pts, math.Vec3{
			X: gomath.Cos(angle) * r,
			Y: noise(rng) * 0.03,
			Z: gomath.Sin(angle) * r,
		})
	}

	return pts
}
