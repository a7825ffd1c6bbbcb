package connection

import (
	gomath "math"
	"math/rand"
	"sort"

	"github.com/lunarc/nebula/pkg/math"
)

// Selection tuning.
const (
	reachFloor      = 0.1 // reach never shrinks below 10% of the max distance
	weightAttempts  = 20  // weighted sampling budget, per requested slot
	maxStrataBands  = 5
	weightBaseline  = 0.01 // keeps far candidates selectable at any focus
	focusExpMin     = 0.5
	focusExpSpread  = 4.5
)

type candidate struct {
	idx  int
	dist float64
}

// SelectForHub picks up to count particle indices for one hub. Reach
// scales with spread between 10% of the max hub-particle distance and
// the full range; candidates outside reach are ignored unless reach
// captures nothing, in which case the nearest count particles are
// used. The returned indices are distinct and valid for the given
// collection; the result length is min(count, candidates).
func SelectForHub(hub Hub, points []math.Vec3, count int, dist Distribution, spread, focus float64, rng *rand.Rand) []int {
	if count <= 0 || len(points) == 0 {
		return nil
	}

	cands := make([]candidate, len(points))
	for i, p := range points {
		cands[i] = candidate{idx: i, dist: hub.Distance(p)}
	}
	sort.Slice(cands, func(a, b int) bool { return cands[a].dist < cands[b].dist })

	maxDist := cands[len(cands)-1].dist
	reach := maxDist * (reachFloor + spread*(1-reachFloor))

	within := 0
	for within < len(cands) && cands[within].dist <= reach {
		within++
	}
	if within == 0 {
		// Reach captured nothing; fall back to the nearest count.
		return takeNearest(cands, count)
	}
	pool := cands[:within]

	switch dist {
	case DistRandom:
		return randomSelect(pool, count, rng)
	case DistWeighted:
		return weightedSelect(pool, count, focus, reach, rng)
	case DistStratified:
		return stratifiedSelect(pool, count, reach, rng)
	default:
		return takeNearest(pool, count)
	}
}

func takeNearest(pool []candidate, count int) []int {
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = pool[i].idx
	}
	return out
}

func randomSelect(pool []candidate, count int, rng *rand.Rand) []int {
	perm := rng.Perm(len(pool))
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = pool[perm[i]].idx
	}
	return out
}

// weightedSelect importance-samples without replacement. A candidate
// at normalized distance d gets weight (1-d+0.01)^e with
// e = 0.5 + focus*4.5, so high focus sharply favors near candidates.
// Sampling is cumulative-weight roulette with a count*20 attempt
// budget; any remaining slots are topped up with the nearest unused.
func weightedSelect(pool []candidate, count int, focus, reach float64, rng *rand.Rand) []int {
	if count > len(pool) {
		count = len(pool)
	}
	exp := focusExpMin + focus*focusExpSpread

	cum := make([]float64, len(pool))
	total := 0.0
	for i, c := range pool {
		d := c.dist / reach
		total += gomath.Pow(1-d+weightBaseline, exp)
		cum[i] = total
	}

	picked := make([]bool, len(pool))
	out := make([]int, 0, count)
	for attempts := count * weightAttempts; attempts > 0 && len(out) < count; attempts-- {
		r := rng.Float64() * total
		i := sort.SearchFloat64s(cum, r)
		if i >= len(pool) {
			i = len(pool) - 1
		}
		if picked[i] {
			continue
		}
		picked[i] = true
		out = append(out, pool[i].idx)
	}
	// Budget exhausted: degrade to nearest unused, never fail.
	for i := 0; len(out) < count; i++ {
		if !picked[i] {
			picked[i] = true
			out = append(out, pool[i].idx)
		}
	}
	return out
}

// stratifiedSelect partitions reach into equal-width distance bands,
// shuffles within each band and takes an even share per band, then
// trims or pads with nearest unused to hit the exact count.
func stratifiedSelect(pool []candidate, count int, reach float64, rng *rand.Rand) []int {
	if count > len(pool) {
		count = len(pool)
	}
	bands := count
	if bands > maxStrataBands {
		bands = maxStrataBands
	}
	width := reach / float64(bands)

	grouped := make([][]int, bands) // positions into pool, per band
	for pos, c := range pool {
		b := 0
		if width > 0 {
			b = int(c.dist / width)
		}
		if b >= bands {
			b = bands - 1
		}
		grouped[b] = append(grouped[b], pos)
	}

	perBand := (count + bands - 1) / bands
	picked := make([]bool, len(pool))
	out := make([]int, 0, count)
	for _, band := range grouped {
		rng.Shuffle(len(band), func(i, j int) { band[i], band[j] = band[j], band[i] })
		for i := 0; i < len(band) && i < perBand; i++ {
			picked[band[i]] = true
			out = append(out, pool[band[i]].idx)
		}
	}
	if len(out) > count {
		out = out[:count]
	}
	for i := 0; len(out) < count; i++ {
		if !picked[i] {
			picked[i] = true
			out = append(out, pool[i].idx)
		}
	}
	return out
}
