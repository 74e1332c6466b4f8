package rooms

// seedPairs builds the first generation of stripe pairs from the
// Caster's per-segment hits. For every segment with a successful cast,
// it locates the far segment the hit landed on, reconstructs both
// candidate "mate points" on the near segment (the two points at the
// same wall-thickness distance from the sampled point, in each
// direction along the segment), and accepts the first candidate whose
// ray toward the far segment actually lands on it within MaxGapRatio of
// the original cast distance.
//
// Finds, for each cast hit, a mate segment and candidate pairing point,
// then confirms the pairing with a second ray cast.
func seedPairs(segs []Segment, hits []castHit, cfg Config) []StripePair {
	var out []StripePair
	seen := make(map[StripePair]bool)

	for idxA, h := range hits {
		if !h.Ok {
			continue
		}
		segA := segs[idxA]
		p0, p1 := h.P0, h.P1

		idxB := -1
		for j, segB := range segs {
			if j == idxA {
				continue
			}
			if pointOnSegment(p1, segB.P, segB.Q, 1e-6) {
				idxB = j
				break
			}
		}
		if idxB < 0 {
			continue
		}

		v := sub(segA.Q, segA.P)
		l := norm(v)
		if l == 0 {
			continue
		}
		vHat := scale(v, 1/l)
		t0 := dot(sub(p0, segA.P), vHat) / l
		dHit := dist(p1, p0)
		dt := dHit / l

		var candidates []Point
		for _, sign := range [2]float64{-1, 1} {
			t2 := t0 + sign*dt
			if t2 >= 0 && t2 <= 1 {
				candidates = append(candidates, add(segA.P, scale(v, t2)))
			}
		}

		dirVec := sub(p1, p0)
		nLen := norm(dirVec)
		if nLen < cfg.Eps {
			continue
		}
		dHat := scale(dirVec, 1/nLen)

		segB := segs[idxB]
		for _, p2 := range candidates {
			tHit, _, ok := intersectRaySegment(p2, dHat, segB.P, segB.Q, cfg.Eps)
			if !ok {
				continue
			}
			if tHit > cfg.MaxGapRatio*dHit {
				continue
			}
			pair := StripePair{A: idxA, B: idxB}.Canon()
			if !seen[pair] {
				seen[pair] = true
				out = append(out, pair)
			}
			break
		}
	}
	return out
}
