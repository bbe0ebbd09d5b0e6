package hull_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/hull"
	"github.com/solderpath/pns/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOctagon_AroundAPoint(t *testing.T) {
	rect := geom.RectFromPoints(geom.Pt(0, 0))
	h := hull.Octagon(rect, 100000)
	require.Len(t, h.Points, 8)
	assert.True(t, h.Closed)
	for _, p := range h.Points {
		assert.LessOrEqual(t, p.Distance(geom.Pt(0, 0)), 100000.0*1.5)
	}
}

func TestOctagon_StrictlyContainsInflatedItem(t *testing.T) {
	rect := geom.Rect{Min: geom.Pt(0, 0), Max: geom.Pt(1000000, 0)}
	const clearance = int64(50000)
	h := hull.Octagon(rect, clearance)
	core := geom.Seg(rect.Min, rect.Max)
	for _, edge := range h.Segments() {
		d := geom.DistanceSegToSeg(edge, core)
		assert.GreaterOrEqual(t, d, float64(clearance))
	}
}

func TestFor_SegmentHull(t *testing.T) {
	s := &item.Segment{
		LinkedBase: item.NewLinkedBase(item.SingleLayer(0), item.NetHandle(1)),
		Shape:      geom.Seg(geom.Pt(0, 0), geom.Pt(1000000, 0)),
		Width:      200000,
	}
	h, err := hull.For(s, 50000, 0, -1)
	require.NoError(t, err)
	assert.NotEmpty(t, h.Points)
}

func TestClassify_PointOutsideOctagon(t *testing.T) {
	h := hull.Octagon(geom.RectFromPoints(geom.Pt(0, 0), geom.Pt(1000, 0)), 100)
	c := hull.Classify(h, geom.Pt(100000, 100000))
	assert.Equal(t, hull.Outside, c)
}
