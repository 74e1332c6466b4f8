package svgvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PolygonAboveThreshold(t *testing.T) {
	doc := []byte(`<svg><polygon stroke-width="2" points="0,0 10,0 10,10 0,10"/></svg>`)
	pls, err := Parse(doc, 1.5)
	require.NoError(t, err)
	require.Len(t, pls, 1)
	assert.True(t, pls[0].Closed)
	assert.Len(t, pls[0].Points, 4)
}

func TestParse_ThinStrokeIgnored(t *testing.T) {
	doc := []byte(`<svg><polyline stroke-width="0.5" points="0,0 10,0"/></svg>`)
	pls, err := Parse(doc, 1.5)
	require.NoError(t, err)
	assert.Empty(t, pls)
}

func TestParse_InlineCSSStrokeWidth(t *testing.T) {
	doc := []byte(`<svg><line style="stroke-width:3;stroke:#000" x1="0" y1="0" x2="5" y2="5"/></svg>`)
	pls, err := Parse(doc, 1.5)
	require.NoError(t, err)
	require.Len(t, pls, 1)
	assert.Len(t, pls[0].Points, 2)
}

func TestParse_StraightPath(t *testing.T) {
	doc := []byte(`<svg><path stroke-width="2" d="M0 0 L10 0 L10 10"/></svg>`)
	pls, err := Parse(doc, 1.5)
	require.NoError(t, err)
	require.Len(t, pls, 1)
	assert.Len(t, pls[0].Points, 3)
}

func TestParse_CurvedPathUnsupported(t *testing.T) {
	doc := []byte(`<svg><path stroke-width="2" d="M0 0 C5 5 10 5 10 10"/></svg>`)
	pls, err := Parse(doc, 1.5)
	require.NoError(t, err)
	assert.Empty(t, pls)
}
