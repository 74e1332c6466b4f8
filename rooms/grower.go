package rooms

import "sort"

// growPairs repeatedly absorbs ungrouped segments into new stripe pairs
// until every segment is either paired or structurally unreachable.
//
// Each round partitions the segments into: paired (already in a stripe
// pair), connector (an ungrouped segment whose two endpoints each touch
// a different member of some existing pair, i.e. it bridges the pair's
// open end) and lonely (everything else). If lonely is empty the pipeline
// is done. Otherwise, for every existing pair, the lonely segments
// touching each of its two members are tried against each other in
// ascending-index order and the first parallel match is accepted, after
// which that pair stops looking (mirroring the original's
// first-match-then-stop control flow). A round that adds no new pairs
// means growth has stalled and the loop terminates.
//
// Iteratively absorbs remaining segments into paired/ungrouped/connector/
// lonely groups using sorted index slices throughout, so enumeration
// order never depends on map iteration.
func growPairs(segs []Segment, initial []StripePair, cfg Config) []StripePair {
	adj := buildEndpointAdjacency(segs, cfg.PointQuantiseDecimals)

	pairSet := make(map[StripePair]bool)
	var pairs []StripePair
	for _, p := range initial {
		p = p.Canon()
		if !pairSet[p] {
			pairSet[p] = true
			pairs = append(pairs, p)
		}
	}

	for {
		ordered := append([]StripePair(nil), pairs...)
		sort.Slice(ordered, func(i, j int) bool {
			if ordered[i].A != ordered[j].A {
				return ordered[i].A < ordered[j].A
			}
			return ordered[i].B < ordered[j].B
		})

		paired := make(map[int]bool)
		for _, p := range ordered {
			paired[p.A] = true
			paired[p.B] = true
		}

		var ungrouped []int
		for i := range segs {
			if !paired[i] {
				ungrouped = append(ungrouped, i)
			}
		}

		connector := make(map[int]bool)
		for _, u := range ungrouped {
			u1, u2 := segs[u].P, segs[u].Q
			for _, p := range ordered {
				a1, a2 := segs[p.A].P, segs[p.A].Q
				b1, b2 := segs[p.B].P, segs[p.B].Q
				bridging := (samePt(u1, a1) || samePt(u1, a2)) && (samePt(u2, b1) || samePt(u2, b2))
				bridging = bridging || ((samePt(u2, a1) || samePt(u2, a2)) && (samePt(u1, b1) || samePt(u1, b2)))
				if bridging {
					connector[u] = true
					break
				}
			}
		}

		var lonely []int
		for _, u := range ungrouped {
			if !connector[u] {
				lonely = append(lonely, u)
			}
		}
		if len(lonely) == 0 {
			break
		}
		lonelySet := make(map[int]bool, len(lonely))
		for _, l := range lonely {
			lonelySet[l] = true
		}

		var newPairs []StripePair
		used := make(map[int]bool)
		for _, p := range ordered {
			candA := adjacentAmong(adj, segs[p.A], lonelySet, used, cfg.PointQuantiseDecimals)
			candB := adjacentAmong(adj, segs[p.B], lonelySet, used, cfg.PointQuantiseDecimals)

			for _, r1 := range candA {
				for _, r2 := range candB {
					if r1 == r2 {
						continue
					}
					if isParallel(segs[r1].Orientation, segs[r2].Orientation, cfg.AngTol) {
						np := StripePair{A: r1, B: r2}.Canon()
						if !pairSet[np] {
							newPairs = append(newPairs, np)
						}
						used[r1] = true
						used[r2] = true
						break
					}
				}
				if used[r1] {
					break
				}
			}
		}

		if len(newPairs) == 0 {
			break
		}
		for _, np := range newPairs {
			if !pairSet[np] {
				pairSet[np] = true
				pairs = append(pairs, np)
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

func samePt(a, b Point) bool {
	const tol = 1e-6
	return abs(a.X()-b.X()) <= tol && abs(a.Y()-b.Y()) <= tol
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func isParallel(oa, ob, tol float64) bool {
	return angleDiffFold180(oa, ob) <= tol
}

// buildEndpointAdjacency maps every quantised endpoint to the sorted
// list of segment indices that touch it there.
func buildEndpointAdjacency(segs []Segment, decimals int) map[quantKey][]int {
	adj := make(map[quantKey][]int)
	for i, s := range segs {
		for _, p := range [2]Point{s.P, s.Q} {
			k := quantisePoint(p, decimals)
			adj[k] = append(adj[k], i)
		}
	}
	for k := range adj {
		sort.Ints(adj[k])
	}
	return adj
}

// adjacentAmong returns, in ascending index order, every lonely segment
// (and not already used this round) whose endpoint coincides with one of
// seg's endpoints.
func adjacentAmong(adj map[quantKey][]int, seg Segment, lonely, used map[int]bool, decimals int) []int {
	found := make(map[int]bool)
	for _, p := range [2]Point{seg.P, seg.Q} {
		k := quantisePoint(p, decimals)
		for _, j := range adj[k] {
			if lonely[j] && !used[j] {
				found[j] = true
			}
		}
	}
	out := make([]int, 0, len(found))
	for j := range found {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}
