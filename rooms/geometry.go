package rooms

import (
	"math"
	"sort"
)

// cross2D is the scalar z-component of the 3D cross product of (ax,ay,0)
// and (bx,by,0).
func cross2D(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

func sub(a, b Point) Point {
	return Point{a.X() - b.X(), a.Y() - b.Y()}
}

func add(a, b Point) Point {
	return Point{a.X() + b.X(), a.Y() + b.Y()}
}

func scale(a Point, s float64) Point {
	return Point{a.X() * s, a.Y() * s}
}

func norm(a Point) float64 {
	return math.Hypot(a.X(), a.Y())
}

func unit(a Point) (Point, bool) {
	n := norm(a)
	if n == 0 {
		return Point{}, false
	}
	return Point{a.X() / n, a.Y() / n}, true
}

func dist(a, b Point) float64 {
	return norm(sub(a, b))
}

func dot(a, b Point) float64 {
	return a.X()*b.X() + a.Y()*b.Y()
}

func midpoint(a, b Point) Point {
	return Point{(a.X() + b.X()) / 2, (a.Y() + b.Y()) / 2}
}

// intersectRaySegment casts a ray from P in direction D (not required to
// be unit length) against the segment Q1-Q2 and returns the ray
// parameter t and the hit point. ok is false when the ray and segment are
// parallel, or when the intersection falls outside the ray (t<0) or
// outside the segment (u outside [0,1]).
//
// Solves P + t*D = Q1 + u*(Q2-Q1) via the 2D cross-product parametrization.
func intersectRaySegment(p, d, q1, q2 Point, eps float64) (t float64, hit Point, ok bool) {
	e := sub(q2, q1)
	denom := cross2D(d.X(), d.Y(), e.X(), e.Y())
	if math.Abs(denom) < eps {
		return 0, Point{}, false
	}
	diff := sub(q1, p)
	tt := cross2D(diff.X(), diff.Y(), e.X(), e.Y()) / denom
	uu := cross2D(diff.X(), diff.Y(), d.X(), d.Y()) / denom
	if tt < 0 || uu < 0 || uu > 1 {
		return 0, Point{}, false
	}
	return tt, add(p, scale(d, tt)), true
}

// segmentIntersection finds where segment A1-A2 crosses segment B1-B2,
// the same cross-product parametrization as intersectRaySegment but with
// both parameters bounded to the segment's own extent rather than an
// unbounded ray. t and u are the crossing's position along each segment,
// 0 at the first point and 1 at the second. ok is false for parallel
// segments or a crossing outside either segment.
func segmentIntersection(a1, a2, b1, b2 Point, eps float64) (t, u float64, hit Point, ok bool) {
	d := sub(a2, a1)
	e := sub(b2, b1)
	denom := cross2D(d.X(), d.Y(), e.X(), e.Y())
	if math.Abs(denom) < eps {
		return 0, 0, Point{}, false
	}
	diff := sub(b1, a1)
	t = cross2D(diff.X(), diff.Y(), e.X(), e.Y()) / denom
	u = cross2D(diff.X(), diff.Y(), d.X(), d.Y()) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, Point{}, false
	}
	return t, u, add(a1, scale(d, t)), true
}

// pointOnSegment reports whether point lies on segment Q1-Q2 within the
// given absolute tolerance, using a perpendicular-distance check followed
// by a projection-parameter bound check.
func pointOnSegment(pt, q1, q2 Point, tol float64) bool {
	e := sub(q2, q1)
	elen := norm(e)
	if elen < 1e-12 {
		return dist(pt, q1) <= tol
	}
	d := sub(pt, q1)
	perp := math.Abs(cross2D(d.X(), d.Y(), e.X(), e.Y())) / elen
	if perp > tol {
		return false
	}
	u := dot(d, e) / (elen * elen)
	return u >= -tol/elen && u <= 1+tol/elen
}

// orientationDeg returns the direction of Q-P as degrees in [0,180).
func orientationDeg(p, q Point) float64 {
	d := sub(q, p)
	a := math.Atan2(d.Y(), d.X()) * 180 / math.Pi
	a = math.Mod(a, 180)
	if a < 0 {
		a += 180
	}
	return a
}

// angleDiffFold180 returns the smallest difference between two
// orientations that both live on a mod-180 circle.
func angleDiffFold180(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 180)
	if d > 90 {
		d = 180 - d
	}
	return d
}

func quantise(v float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.Round(v*m) / m
}

// quantKey turns a point into a hashable, deterministically-formed key
// by rounding each coordinate to the configured number of decimals.
// Quantisation (not raw float equality) is what lets coincident endpoints
// produced by independent floating-point paths land in the same bucket.
type quantKey struct {
	x, y float64
}

func quantisePoint(p Point, decimals int) quantKey {
	return quantKey{quantise(p.X(), decimals), quantise(p.Y(), decimals)}
}

// quantKeyLess orders keys by x then y, giving every map keyed by quantKey
// a total order it can be iterated in instead of Go's randomized map order.
func quantKeyLess(a, b quantKey) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.y < b.y
}

// unionFind is a standard path-compressed disjoint-set over a dense
// index range, used by the Skeletoniser to cluster raw links. (The
// Polygoniser uses the string-keyed unionFindKeys in polygon.go instead.)
//
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// groups returns the members of every distinct set, as slices of the
// original indices sorted ascending, ordered by each group's smallest
// member so the result is fully deterministic.
func (uf *unionFind) groups(n int) [][]int {
	byRoot := make(map[int][]int)
	for i := 0; i < n; i++ {
		r := uf.find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	roots := make([]int, 0, len(byRoot))
	for r := range byRoot {
		roots = append(roots, r)
	}
	sort.Ints(roots)
	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		members := byRoot[r]
		sort.Ints(members)
		out = append(out, members)
	}
	return out
}

// perpDistanceToLine returns the perpendicular distance from pt to the
// infinite line through (linePt, lineDir), where lineDir need not be
// unit length.
func perpDistanceToLine(pt, linePt, lineDir Point) float64 {
	d := sub(pt, linePt)
	ln := norm(lineDir)
	if ln < 1e-12 {
		return norm(d)
	}
	return math.Abs(cross2D(d.X(), d.Y(), lineDir.X(), lineDir.Y())) / ln
}

// principalAxis2D returns the unit first principal direction of the set
// of points, computed analytically from the 2x2 covariance matrix's
// dominant eigenvector rather than a general SVD: the data is always
// planar, so a closed-form 2x2 eigen-decomposition is exact and avoids
// pulling in a linear-algebra dependency for a two-number problem.
func principalAxis2D(pts []Point) Point {
	var mx, my float64
	for _, p := range pts {
		mx += p.X()
		my += p.Y()
	}
	n := float64(len(pts))
	mx /= n
	my /= n

	var sxx, sxy, syy float64
	for _, p := range pts {
		dx, dy := p.X()-mx, p.Y()-my
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}

	// Eigenvector of the symmetric 2x2 matrix [[sxx,sxy],[sxy,syy]]
	// belonging to the larger eigenvalue.
	tr := sxx + syy
	det := sxx*syy - sxy*sxy
	disc := math.Sqrt(math.Max(tr*tr/4-det, 0))
	lambda := tr/2 + disc

	var vx, vy float64
	if math.Abs(sxy) > 1e-12 {
		vx, vy = lambda-syy, sxy
	} else if sxx >= syy {
		vx, vy = 1, 0
	} else {
		vx, vy = 0, 1
	}
	v, ok := unit(Point{vx, vy})
	if !ok {
		return Point{1, 0}
	}
	return v
}

// canonAxisDir flips dir so its X component is non-negative, so the same
// axis is produced regardless of which endpoint ordering fed the fit.
func canonAxisDir(dir Point) Point {
	if dir.X() < 0 || (dir.X() == 0 && dir.Y() < 0) {
		return Point{-dir.X(), -dir.Y()}
	}
	return dir
}

func boundsOf(pts []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
	}
	return
}
