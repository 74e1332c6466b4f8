package rooms

import "sort"

// link is one undirected line segment in the evolving skeleton, either a
// raw per-pair midpoint connector or, later, an aligned/merged piece of a
// wall's centerline.
type link struct {
	P, Q Point
}

func (l link) length() float64 { return dist(l.P, l.Q) }

// buildSkeleton turns the final stripe pairs into a welded, axis-aligned
// line network: one raw midpoint-to-midpoint link per pair, clustered by
// near-collinearity, each cluster straightened onto a single fitted
// axis, and finally interval-merged so overlapping or touching pieces on
// the same axis collapse into one.
//
// Builds mid-point skeleton links, clusters and aligns them onto
// best-fit axes, welds shared endpoints, and merges overlapping runs.
func buildSkeleton(segs []Segment, pairs []StripePair, cfg Config) []link {
	if len(pairs) == 0 {
		return nil
	}

	raw := make([]link, 0, len(pairs))
	for _, pr := range pairs {
		a, b := segs[pr.A], segs[pr.B]
		l1 := dist(a.P, b.P) + dist(a.Q, b.Q)
		l2 := dist(a.P, b.Q) + dist(a.Q, b.P)
		var c1a, c1b, c2a, c2b Point
		if l1 <= l2 {
			c1a, c1b, c2a, c2b = a.P, b.P, a.Q, b.Q
		} else {
			c1a, c1b, c2a, c2b = a.P, b.Q, a.Q, b.P
		}
		raw = append(raw, link{P: midpoint(c1a, c1b), Q: midpoint(c2a, c2b)})
	}

	n := len(raw)
	orient := make([]float64, n)
	mids := make([]Point, n)
	for i, l := range raw {
		orient[i] = orientationDeg(l.P, l.Q)
		mids[i] = midpoint(l.P, l.Q)
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if angleDiffFold180(orient[i], orient[j]) > cfg.AngTolAlign {
				continue
			}
			dirJ, ok := unit(sub(raw[j].Q, raw[j].P))
			if !ok {
				continue
			}
			gap := perpDistanceToLine(mids[i], raw[j].P, dirJ)
			if gap <= cfg.ShiftTolRatio*maxF(raw[i].length(), raw[j].length()) {
				uf.union(i, j)
			}
		}
	}

	clusters := uf.groups(n)
	clusterOf := make([]int, n)
	for ci, members := range clusters {
		for _, m := range members {
			clusterOf[m] = ci
		}
	}

	type fittedAxis struct {
		anchor, dir Point
	}
	axes := make([]fittedAxis, len(clusters))
	for ci, members := range clusters {
		if len(members) == 1 {
			l := raw[members[0]]
			d, ok := unit(sub(l.Q, l.P))
			if !ok {
				d = Point{1, 0}
			}
			axes[ci] = fittedAxis{anchor: l.P, dir: canonAxisDir(d)}
			continue
		}
		pts := make([]Point, 0, len(members)*2)
		var cx, cy float64
		for _, m := range members {
			pts = append(pts, raw[m].P, raw[m].Q)
		}
		for _, p := range pts {
			cx += p.X()
			cy += p.Y()
		}
		ctr := Point{cx / float64(len(pts)), cy / float64(len(pts))}
		d := canonAxisDir(principalAxis2D(pts))
		axes[ci] = fittedAxis{anchor: ctr, dir: d}
	}

	aligned := make([]link, n)
	for i, l := range raw {
		ax := axes[clusterOf[i]]
		pProj := add(ax.anchor, scale(ax.dir, dot(sub(l.P, ax.anchor), ax.dir)))
		qProj := add(ax.anchor, scale(ax.dir, dot(sub(l.Q, ax.anchor), ax.dir)))
		if dot(sub(qProj, pProj), ax.dir) < 0 {
			pProj, qProj = qProj, pProj
		}
		aligned[i] = link{P: pProj, Q: qProj}
	}

	lengths := make([]float64, n)
	for i, l := range raw {
		lengths[i] = l.length()
	}
	medLen := median(lengths)
	joinTol := cfg.PointJoinTolFactor * medLen

	aligned = weldLinks(aligned, joinTol)

	var unified []link
	for ci, members := range clusters {
		ax := axes[ci]
		type interval struct{ s0, s1 float64 }
		ivs := make([]interval, 0, len(members))
		for _, m := range members {
			l := aligned[m]
			s1 := dot(sub(l.P, ax.anchor), ax.dir)
			s2 := dot(sub(l.Q, ax.anchor), ax.dir)
			if s1 > s2 {
				s1, s2 = s2, s1
			}
			ivs = append(ivs, interval{s1, s2})
		}
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].s0 < ivs[j].s0 })

		merged := []interval{ivs[0]}
		for _, iv := range ivs[1:] {
			last := &merged[len(merged)-1]
			if iv.s0 <= last.s1+joinTol {
				if iv.s1 > last.s1 {
					last.s1 = iv.s1
				}
			} else {
				merged = append(merged, iv)
			}
		}
		for _, m := range merged {
			p := add(ax.anchor, scale(ax.dir, m.s0))
			q := add(ax.anchor, scale(ax.dir, m.s1))
			unified = append(unified, link{P: p, Q: q})
		}
	}

	return weldLinks(unified, joinTol)
}

// weldLinks canonicalizes every endpoint across the whole link list via a
// linear scan: the first time a coordinate is seen it becomes a new
// unique point; every later coordinate within tol of an existing unique
// is snapped to it. Order-dependent by design, matching the original's
// weld().
func weldLinks(links []link, tol float64) []link {
	var uniques []Point
	canon := func(p Point) Point {
		for _, u := range uniques {
			if dist(p, u) <= tol {
				return u
			}
		}
		uniques = append(uniques, p)
		return p
	}
	out := make([]link, len(links))
	for i, l := range links {
		out[i] = link{P: canon(l.P), Q: canon(l.Q)}
	}
	return out
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
