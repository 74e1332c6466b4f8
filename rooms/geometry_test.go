package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectRaySegment_Perpendicular(t *testing.T) {
	t_, hit, ok := intersectRaySegment(Point{0, 0}, Point{1, 0}, Point{5, -5}, Point{5, 5}, 1e-9)
	assert.True(t, ok)
	assert.InDelta(t, 5, t_, 1e-9)
	assert.InDelta(t, 5, hit.X(), 1e-9)
	assert.InDelta(t, 0, hit.Y(), 1e-9)
}

func TestIntersectRaySegment_BehindRayRejected(t *testing.T) {
	_, _, ok := intersectRaySegment(Point{0, 0}, Point{1, 0}, Point{-5, -5}, Point{-5, 5}, 1e-9)
	assert.False(t, ok)
}

func TestSegmentIntersection_Crossing(t *testing.T) {
	tt, u, hit, ok := segmentIntersection(Point{0, 5}, Point{10, 5}, Point{5, 0}, Point{5, 10}, 1e-9)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, tt, 1e-9)
	assert.InDelta(t, 0.5, u, 1e-9)
	assert.InDelta(t, 5, hit.X(), 1e-9)
	assert.InDelta(t, 5, hit.Y(), 1e-9)
}

func TestSegmentIntersection_OutsideExtentRejected(t *testing.T) {
	_, _, _, ok := segmentIntersection(Point{0, 5}, Point{4, 5}, Point{5, 0}, Point{5, 10}, 1e-9)
	assert.False(t, ok)
}

func TestSegmentIntersection_ParallelRejected(t *testing.T) {
	_, _, _, ok := segmentIntersection(Point{0, 0}, Point{10, 0}, Point{0, 1}, Point{10, 1}, 1e-9)
	assert.False(t, ok)
}

func TestQuantKeyLess_OrdersByXThenY(t *testing.T) {
	assert.True(t, quantKeyLess(quantKey{0, 5}, quantKey{1, 0}))
	assert.True(t, quantKeyLess(quantKey{1, 0}, quantKey{1, 1}))
	assert.False(t, quantKeyLess(quantKey{1, 1}, quantKey{1, 1}))
}

func TestPointOnSegment(t *testing.T) {
	assert.True(t, pointOnSegment(Point{5, 0}, Point{0, 0}, Point{10, 0}, 1e-6))
	assert.False(t, pointOnSegment(Point{5, 1}, Point{0, 0}, Point{10, 0}, 1e-6))
	assert.False(t, pointOnSegment(Point{15, 0}, Point{0, 0}, Point{10, 0}, 1e-6))
}

func TestUnionFind_Groups(t *testing.T) {
	uf := newUnionFind(5)
	uf.union(0, 1)
	uf.union(1, 2)
	uf.union(3, 4)

	groups := uf.groups(5)
	assert.Len(t, groups, 2)
	assert.Equal(t, []int{0, 1, 2}, groups[0])
	assert.Equal(t, []int{3, 4}, groups[1])
}

func TestPrincipalAxis2D_HorizontalCluster(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0.1}, {20, -0.1}, {30, 0}}
	dir := principalAxis2D(pts)
	assert.Greater(t, dir.X(), 0.9)
	assert.Less(t, dir.Y(), 0.2)
}

func TestAngleDiffFold180(t *testing.T) {
	assert.InDelta(t, 0, angleDiffFold180(10, 190), 1e-9)
	assert.InDelta(t, 5, angleDiffFold180(2, 177), 1e-9)
}
