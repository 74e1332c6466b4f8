package rooms

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePolyline(x, y, w, h float64) Polyline {
	return Polyline{
		Points: []Point{
			{x, y},
			{x + w, y},
			{x + w, y + h},
			{x, y + h},
		},
		Closed: true,
	}
}

func TestIdentify_EmptyInput(t *testing.T) {
	rooms, err := Identify(nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestIdentify_SingleSquareRoom(t *testing.T) {
	polylines := []Polyline{squarePolyline(0, 0, 100, 60)}

	rooms, err := Identify(polylines, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	r := rooms[0]
	assert.InDelta(t, 0, r.X, 1)
	assert.InDelta(t, 0, r.Y, 1)
	assert.InDelta(t, 100, r.W, 1)
	assert.InDelta(t, 60, r.H, 1)
}

func TestIdentify_TwoAdjacentRooms(t *testing.T) {
	polylines := []Polyline{
		squarePolyline(0, 0, 200, 100),
		{
			Points: []Point{{100, 0}, {100, 100}},
			Closed: false,
		},
	}

	rooms, err := Identify(polylines, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].X < rooms[j].X })

	assert.InDelta(t, 0, rooms[0].X, 1)
	assert.InDelta(t, 0, rooms[0].Y, 1)
	assert.InDelta(t, 100, rooms[0].W, 1)
	assert.InDelta(t, 100, rooms[0].H, 1)

	assert.InDelta(t, 100, rooms[1].X, 1)
	assert.InDelta(t, 0, rooms[1].Y, 1)
	assert.InDelta(t, 100, rooms[1].W, 1)
	assert.InDelta(t, 100, rooms[1].H, 1)
}

func TestIdentify_DegenerateInputNeverErrors(t *testing.T) {
	cases := [][]Polyline{
		nil,
		{},
		{{Points: []Point{{0, 0}}}},
		{{Points: []Point{{0, 0}, {0, 0}}}},
	}
	for _, polylines := range cases {
		rooms, err := Identify(polylines, DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, rooms)
	}
}

func TestIdentify_Deterministic(t *testing.T) {
	polylines := []Polyline{squarePolyline(0, 0, 40, 30)}
	cfg := DefaultConfig()

	first, err := Identify(polylines, cfg)
	require.NoError(t, err)
	second, err := Identify(polylines, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFlatten_ClosedPolylineClosesTheLoop(t *testing.T) {
	segs := flatten([]Polyline{squarePolyline(0, 0, 10, 10)})
	require.Len(t, segs, 4)
	assert.Equal(t, segs[3].Q, segs[0].P)
}

func TestFlatten_OpenPolylineSkipsClosingEdge(t *testing.T) {
	segs := flatten([]Polyline{{
		Points: []Point{{0, 0}, {10, 0}, {10, 10}},
		Closed: false,
	}})
	assert.Len(t, segs, 2)
}
