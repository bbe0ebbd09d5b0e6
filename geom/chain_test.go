package geom_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_SplitAndRejoinPreservesGeometry(t *testing.T) {
	c := geom.NewChain(geom.Pt(0, 0), geom.Pt(1000, 0), geom.Pt(1000, 1000))
	left, right, err := c.Split(geom.Pt(500, 0))
	require.NoError(t, err)

	rejoined := left.Append(Chain(right.Points[1:], right.ArcIndex[1:]))
	assert.Equal(t, c.Points, rejoined.Points)
}

// Chain is a tiny test helper building a geom.Chain from raw slices so the
// rejoin above doesn't duplicate the shared split vertex.
func Chain(pts []geom.Point, arcIdx []int) geom.Chain {
	return geom.Chain{Points: pts, ArcIndex: arcIdx}
}

func TestChain_ClearArcsPreservesAreaOfClosedChain(t *testing.T) {
	c := geom.Chain{
		Points: []geom.Point{geom.Pt(0, 0), geom.Pt(1000, 0), geom.Pt(1000, 1000), geom.Pt(0, 1000)},
		Closed: true,
	}
	c.ArcIndex = []int{-1, -1, -1, -1}
	cleared := c.ClearArcs()
	assert.Equal(t, c.SignedArea(), cleared.SignedArea())
	assert.Equal(t, c.Points, cleared.Points)
}

func TestChain_ReversedSwapsEndpoints(t *testing.T) {
	c := geom.NewChain(geom.Pt(0, 0), geom.Pt(1000, 0), geom.Pt(1000, 1000))
	r := c.Reversed()
	assert.True(t, r.Points[0].Equal(geom.Pt(1000, 1000)))
	assert.True(t, r.Points[len(r.Points)-1].Equal(geom.Pt(0, 0)))
}

func TestSegment_ZeroLength(t *testing.T) {
	s := geom.Seg(geom.Pt(5, 5), geom.Pt(5, 5))
	assert.True(t, s.IsDegenerate())
	assert.Equal(t, 0.0, s.Length())
}
