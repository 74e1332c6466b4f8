package rooms

import (
	"math"
	"math/rand"
)

// castHit is the result of casting both normals from one segment's
// sampled point: P0 is the sample, P1 is the closest point hit on any
// other segment, and Ok is false when no segment was hit at all (an
// isolated wall with nothing facing it).
type castHit struct {
	P0, P1 Point
	Ok     bool
}

// cast samples one point per segment with a PRNG seeded from cfg (never
// a package-global generator, so repeated calls to Identify never share
// or leak random state across invocations) and, for each segment in
// index order, casts both of its perpendicular normals against every
// other segment, keeping the closest hit.
//
// Casts a perpendicular normal from a sampled point on each segment until
// it hits another segment in the network.
func cast(segs []Segment, cfg Config) []castHit {
	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	hits := make([]castHit, len(segs))

	for i, s := range segs {
		t := rng.Float64()
		p0 := add(s.P, scale(sub(s.Q, s.P), t))

		v := sub(s.Q, s.P)
		vn := norm(v)
		if vn == 0 {
			vn = 1
		}
		n1 := Point{-v.Y() / vn, v.X() / vn}
		n2 := Point{v.Y() / vn, -v.X() / vn}

		bestT := math.Inf(1)
		var bestPt Point
		found := false

		for _, d := range [2]Point{n1, n2} {
			for j, o := range segs {
				if j == i {
					continue
				}
				t, hitPt, ok := intersectRaySegment(p0, d, o.P, o.Q, cfg.Eps)
				if !ok {
					continue
				}
				if t < bestT {
					bestT, bestPt, found = t, hitPt, true
				}
			}
		}

		hits[i] = castHit{P0: p0, P1: bestPt, Ok: found}
	}
	return hits
}
