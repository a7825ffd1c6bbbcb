package connection

import (
	gomath "math"
	"math/rand"

	"github.com/lunarc/nebula/pkg/math"
)

// Hub shell radii for outside placement.
const (
	shellMin = 1.5
	shellMax = 2.5
)

// insideJitter is the positional noise added to interior hubs.
const insideJitter = 0.1

// PlaceHubs derives count hubs from the particle collection. Inside
// hubs are random particles pulled to 50% radius with small jitter;
// outside hubs sit on a uniform spherical shell. Mixed alternates,
// even indices inside. When the collection is empty an inside pick is
// impossible, so affected hubs fall back to the outside shell.
func PlaceHubs(points []math.Vec3, count int, placement Placement, rng *rand.Rand) []Hub {
	if count <= 0 {
		return nil
	}
	hubs := make([]Hub, 0, count)
	for i := 0; i < count; i++ {
		inside := placement == PlacementInside || (placement == PlacementMixed && i%2 == 0)
		if inside && len(points) > 0 {
			p := points[rng.Intn(len(points))].Scale(0.5)
			hubs = append(hubs, Hub{
				X: p.X + (rng.Float64()*2-1)*insideJitter,
				Y: p.Y + (rng.Float64()*2-1)*insideJitter,
				Z: p.Z + (rng.Float64()*2-1)*insideJitter,
			})
			continue
		}
		hubs = append(hubs, shellPoint(rng))
	}
	return hubs
}

// shellPoint samples a uniform point on a shell of radius
// [shellMin, shellMax]. The polar angle comes from an inverse cosine
// so points do not cluster at the poles.
func shellPoint(rng *rand.Rand) Hub {
	r := shellMin + rng.Float64()*(shellMax-shellMin)
	theta := gomath.Acos(2*rng.Float64() - 1)
	phi := 2 * gomath.Pi * rng.Float64()
	sinT := gomath.Sin(theta)
	return Hub{
		X: r * sinT * gomath.Cos(phi),
		Y: r * gomath.Cos(theta),
		Z: r * sinT * gomath.Sin(phi),
	}
}
