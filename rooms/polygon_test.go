package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLinksAtIntersections_TJunction(t *testing.T) {
	cfg := DefaultConfig()
	links := []link{
		{P: Point{0, 0}, Q: Point{200, 0}},
		{P: Point{100, 0}, Q: Point{100, 100}},
	}

	out := splitLinksAtIntersections(links, cfg)

	require.Len(t, out, 3)
	var dividerFound, leftFound, rightFound bool
	for _, l := range out {
		switch {
		case dist(l.P, Point{100, 0}) < 1e-6 && dist(l.Q, Point{100, 100}) < 1e-6:
			dividerFound = true
		case dist(l.P, Point{0, 0}) < 1e-6 && dist(l.Q, Point{100, 0}) < 1e-6:
			leftFound = true
		case dist(l.P, Point{100, 0}) < 1e-6 && dist(l.Q, Point{200, 0}) < 1e-6:
			rightFound = true
		}
	}
	assert.True(t, dividerFound, "divider link should survive unsplit")
	assert.True(t, leftFound, "perimeter should split at the junction, left half")
	assert.True(t, rightFound, "perimeter should split at the junction, right half")
}

func TestSplitLinksAtIntersections_NoCrossingIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	links := []link{
		{P: Point{0, 0}, Q: Point{10, 0}},
		{P: Point{0, 10}, Q: Point{10, 10}},
	}

	out := splitLinksAtIntersections(links, cfg)
	assert.Equal(t, links, out)
}

func TestTraceFaces_OrderIsDeterministicAcrossRuns(t *testing.T) {
	cfg := DefaultConfig()
	links := []link{
		{P: Point{0, 0}, Q: Point{200, 0}},
		{P: Point{200, 0}, Q: Point{200, 100}},
		{P: Point{200, 100}, Q: Point{0, 100}},
		{P: Point{0, 100}, Q: Point{0, 0}},
		{P: Point{100, 0}, Q: Point{100, 100}},
	}
	links = splitLinksAtIntersections(links, cfg)

	first := traceFaces(links, cfg)
	second := traceFaces(links, cfg)
	assert.Equal(t, first, second)
}
