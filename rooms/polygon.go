package rooms

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// polygonise turns the welded skeleton links into closed faces and
// reports each surviving face as a Room bounding box.
//
// Links are first split at every point where one crosses another, so a
// T-junction where a divider wall meets the interior of a longer
// perimeter segment becomes a shared graph vertex rather than a
// dangling edge. The resulting links are loaded into a katalvlaran/lvlath
// graph (quantised endpoints as vertices, links as edges) and a
// full-traversal DFS isolates every connected wall network, exactly as
// independent sub-graphs, before each is polygonised on its own. Face
// extraction itself is a planar straight-line-graph boundary trace: at
// every vertex the outgoing half-edges are sorted by angle, and the
// face to one side of a directed edge is traced by always continuing
// along the next half-edge in angular order from the reversed incoming
// edge. This is the same "follow the adjacent wall" rule a contour
// tracer uses on pixel grids, generalized here to an arbitrary planar
// graph. No standalone planarize/polygonize library is wired in, so
// this boundary trace stands in for one.
func polygonise(links []link, cfg Config) []Room {
	var clean []link
	for _, l := range links {
		if dist(l.P, l.Q) > cfg.Eps {
			clean = append(clean, l)
		}
	}
	if len(clean) == 0 {
		return nil
	}
	clean = splitLinksAtIntersections(clean, cfg)

	g := core.NewGraph()
	keyOf := func(p Point) string {
		k := quantisePoint(p, cfg.PointQuantiseDecimals)
		return fmt.Sprintf("%.*f,%.*f", cfg.PointQuantiseDecimals, k.x, cfg.PointQuantiseDecimals, k.y)
	}

	vertexPos := make(map[string]Point)
	for _, l := range clean {
		for _, p := range [2]Point{l.P, l.Q} {
			k := keyOf(p)
			if _, ok := vertexPos[k]; !ok {
				vertexPos[k] = p
				_ = g.AddVertex(k)
			}
		}
	}
	for _, l := range clean {
		_, _ = g.AddEdge(keyOf(l.P), keyOf(l.Q), 0)
	}

	var ids []string
	for id := range vertexPos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	if err != nil {
		return nil
	}

	compUF := newUnionFindKeys(ids)
	for child, parent := range result.Parent {
		compUF.union(child, parent)
	}
	components := compUF.groupsByKey()

	var rooms []Room
	for _, comp := range components {
		memberSet := make(map[string]bool, len(comp))
		for _, id := range comp {
			memberSet[id] = true
		}
		var compLinks []link
		for _, l := range clean {
			if memberSet[keyOf(l.P)] && memberSet[keyOf(l.Q)] {
				compLinks = append(compLinks, l)
			}
		}
		rooms = append(rooms, traceFaces(compLinks, cfg)...)
	}
	return rooms
}

// halfEdge is one directed traversal of an undirected link.
type halfEdge struct {
	from, to Point
}

// splitLinksAtIntersections cuts every link at the interior points where
// it crosses another link, so two links that cross without sharing a
// declared endpoint (a T-junction, or a divider wall passing through a
// longer perimeter wall) end up sharing a genuine graph vertex instead
// of passing through each other undetected.
//
// Pairwise link-link crossings are found with segmentIntersection, the
// same cross-product technique intersectRaySegment uses for its ray
// form. Both the outer pairwise scan and the per-link cut list are
// iterated/sorted in index or parameter order, never map order, so the
// result is independent of any map iteration.
func splitLinksAtIntersections(links []link, cfg Config) []link {
	const interior = 1e-9

	type cut struct {
		t float64
		p Point
	}
	cuts := make([][]cut, len(links))

	for i := 0; i < len(links); i++ {
		for j := i + 1; j < len(links); j++ {
			t, u, p, ok := segmentIntersection(links[i].P, links[i].Q, links[j].P, links[j].Q, cfg.Eps)
			if !ok {
				continue
			}
			if t > interior && t < 1-interior {
				cuts[i] = append(cuts[i], cut{t, p})
			}
			if u > interior && u < 1-interior {
				cuts[j] = append(cuts[j], cut{u, p})
			}
		}
	}

	out := make([]link, 0, len(links))
	for i, l := range links {
		if len(cuts[i]) == 0 {
			out = append(out, l)
			continue
		}
		sort.SliceStable(cuts[i], func(a, b int) bool { return cuts[i][a].t < cuts[i][b].t })
		prev := l.P
		for _, c := range cuts[i] {
			if dist(prev, c.p) > cfg.Eps {
				out = append(out, link{P: prev, Q: c.p})
			}
			prev = c.p
		}
		if dist(prev, l.Q) > cfg.Eps {
			out = append(out, link{P: prev, Q: l.Q})
		}
	}
	return out
}

// traceFaces extracts the closed interior faces of one connected planar
// link network via half-edge boundary tracing, keeping only faces with a
// positive signed area (the bounded faces) that clears the minimum-area
// threshold. The traced ring is not checked for self-intersection or
// repeated vertices.
func traceFaces(links []link, cfg Config) []Room {
	if len(links) == 0 {
		return nil
	}

	keyOf := func(p Point) quantKey { return quantisePoint(p, cfg.PointQuantiseDecimals) }

	pos := make(map[quantKey]Point)
	adj := make(map[quantKey][]quantKey)
	for _, l := range links {
		kp, kq := keyOf(l.P), keyOf(l.Q)
		if kp == kq {
			continue
		}
		pos[kp], pos[kq] = l.P, l.Q
		adj[kp] = append(adj[kp], kq)
		adj[kq] = append(adj[kq], kp)
	}

	vertices := make([]quantKey, 0, len(adj))
	for v := range adj {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool { return quantKeyLess(vertices[i], vertices[j]) })

	// Sort each vertex's neighbors by the polar angle of the edge to it,
	// ascending. nextCW scans all neighbors and picks the one with the
	// smallest clockwise turn from the reversed incoming edge.
	angleOf := func(from, to quantKey) float64 {
		d := sub(pos[to], pos[from])
		return math.Atan2(d.Y(), d.X())
	}
	for _, v := range vertices {
		ns := adj[v]
		sort.Slice(ns, func(i, j int) bool { return angleOf(v, ns[i]) < angleOf(v, ns[j]) })
		adj[v] = ns
	}
	nextCW := func(v, arrivedFrom quantKey) quantKey {
		ns := adj[v]
		revAngle := angleOf(v, arrivedFrom)
		best := ns[0]
		bestGap := math.Inf(1)
		for _, n := range ns {
			a := angleOf(v, n)
			gap := math.Mod(revAngle-a+4*math.Pi, 2*math.Pi)
			if gap < 1e-12 {
				gap += 2 * math.Pi
			}
			if gap < bestGap {
				bestGap, best = gap, n
			}
		}
		return best
	}

	visited := make(map[[2]quantKey]bool)
	var rooms []Room
	for _, v := range vertices {
		for _, w := range adj[v] {
			start := [2]quantKey{v, w}
			if visited[start] {
				continue
			}
			var loop []Point
			cur, prev := w, v
			visited[start] = true
			loop = append(loop, pos[v])
			guard := 0
			for cur != v && guard < 4*len(pos)+8 {
				loop = append(loop, pos[cur])
				nxt := nextCW(cur, prev)
				visited[[2]quantKey{cur, nxt}] = true
				prev, cur = cur, nxt
				guard++
			}
			if cur != v || len(loop) < 3 {
				continue
			}
			area := signedArea(loop)
			if area <= 0 {
				// Boundary/outer trace for this component; not a room.
				continue
			}
			if area < cfg.MinRoomArea {
				continue
			}
			minX, minY, maxX, maxY := boundsOf(loop)
			rooms = append(rooms, Room{X: minX, Y: minY, W: maxX - minX, H: maxY - minY})
		}
	}
	return rooms
}

func signedArea(pts []Point) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	return sum / 2
}

// unionFindKeys is a string-keyed disjoint-set, used to collapse
// DFS-forest parent edges into connected components.
type unionFindKeys struct {
	parent map[string]string
}

func newUnionFindKeys(ids []string) *unionFindKeys {
	uf := &unionFindKeys{parent: make(map[string]string, len(ids))}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFindKeys) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFindKeys) union(a, b string) {
	if _, ok := uf.parent[a]; !ok {
		uf.parent[a] = a
	}
	if _, ok := uf.parent[b]; !ok {
		uf.parent[b] = b
	}
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[rb] = ra
	}
}

func (uf *unionFindKeys) groupsByKey() [][]string {
	byRoot := make(map[string][]string)
	for id := range uf.parent {
		r := uf.find(id)
		byRoot[r] = append(byRoot[r], id)
	}
	out := make([][]string, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Strings(members)
		out = append(out, members)
	}
	// Order groups by their smallest member, not by root: which key ends up
	// as root depends on the order unions were applied in.
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
