package rooms

import "github.com/paulmach/orb"

// Point is a 2D coordinate in the same units as the upstream vector
// document (millimeters, pixels, or SVG user units). The pipeline is
// unit-agnostic; only the tunable constants carry an implicit scale.
type Point = orb.Point

// Polyline is a single upstream wall stroke as handed off by the reader
// (component R): an open or closed chain of points, already filtered by
// stroke width. A two-point polyline represents a straight wall segment;
// a closed polygon is flattened edge by edge by the Flattener.
type Polyline struct {
	Points []Point
	Closed bool
}

// Segment is one straight wall piece after flattening. Index is the
// segment's position in the dense, zero-based enumeration produced by
// the Flattener; every later stage addresses segments by this index
// rather than by pointer or map key, so that iteration order is always
// reproducible.
type Segment struct {
	Index       int
	P, Q        Point
	Orientation float64 // degrees, folded into [0,180)
	Mid         Point
	Length      float64
}

// StripePair names the two segment indices that the Pair-Seeder or
// Pair-Grower believes face each other across the thickness of a wall.
// The pair is unordered in meaning but stored in a canonical (A<B) form
// so that membership tests and deduplication are index-comparisons, not
// map lookups.
type StripePair struct {
	A, B int
}

// Canon returns the pair with the lower index first.
func (p StripePair) Canon() StripePair {
	if p.A <= p.B {
		return p
	}
	return StripePair{A: p.B, B: p.A}
}

// rawLink is one midpoint-to-midpoint skeleton segment produced by the
// Skeletoniser from a single stripe pair, before clustering.
type rawLink struct {
	P, Q Point
	pair StripePair
}

// axis is the fitted centerline direction and anchor for one cluster of
// raw links. Dir is always canonicalized so Dir.X() >= 0, which makes the
// axis, and everything projected onto it, independent of member order.
type axis struct {
	Anchor Point
	Dir    Point
}

// Room is one detected enclosed space, reported as its axis-aligned
// bounding box. X, Y is the lower-left corner; W, H are strictly
// positive.
type Room struct {
	X, Y, W, H float64
}

// BBox returns the room as a [x, y, w, h] tuple, matching the wire
// encoding used by the HTTP surface and the CLI's JSON output.
func (r Room) BBox() [4]float64 {
	return [4]float64{r.X, r.Y, r.W, r.H}
}
