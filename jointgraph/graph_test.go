package jointgraph_test

import (
	"testing"

	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/jointgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLink_CreatesJointsAtBothEnds(t *testing.T) {
	g := jointgraph.New()
	uid := item.NewUID()
	layers := item.SingleLayer(0)
	net := item.NetHandle(1)
	from, to := g.AddLink(uid, item.Pt(0, 0), item.Pt(1000, 0), layers, net, 200000, false)

	jf, ok := g.Joint(from)
	require.True(t, ok)
	assert.Equal(t, 1, jf.Degree())

	jt, ok := g.Joint(to)
	require.True(t, ok)
	assert.Equal(t, 1, jt.Degree())
}

func TestRemoveLink_PrunesEmptyJoints(t *testing.T) {
	g := jointgraph.New()
	uid := item.NewUID()
	layers := item.SingleLayer(0)
	net := item.NetHandle(1)
	from, _ := g.AddLink(uid, item.Pt(0, 0), item.Pt(1000, 0), layers, net, 200000, false)
	g.RemoveLink(uid)

	_, ok := g.Joint(from)
	assert.False(t, ok)
}

func TestNeighborLinks_TwoSegmentsShareJoint(t *testing.T) {
	g := jointgraph.New()
	layers := item.SingleLayer(0)
	net := item.NetHandle(1)
	u1 := item.NewUID()
	u2 := item.NewUID()
	_, mid := g.AddLink(u1, item.Pt(0, 0), item.Pt(1000, 0), layers, net, 200000, false)
	g.AddLink(u2, item.Pt(1000, 0), item.Pt(2000, 0), layers, net, 200000, false)

	neighbors := g.NeighborLinks(mid, u1)
	require.Len(t, neighbors, 1)
	assert.Equal(t, u2, neighbors[0])
}
