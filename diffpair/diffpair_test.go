package diffpair_test

import (
	"testing"

	"github.com/solderpath/pns/diffpair"
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct{ clearance int64 }

func (s stubResolver) Clearance(a, b item.Item, useEpsilon bool) int64 { return s.clearance }
func (s stubResolver) QueryConstraint(kind rule.ConstraintKind, a, b item.Item, layer int) (rule.Constraint, bool) {
	return rule.Constraint{}, false
}
func (s stubResolver) DpCoupledNet(net item.NetHandle) item.NetHandle { return item.NoNet }
func (s stubResolver) DpNetPolarity(net item.NetHandle) rule.Polarity { return rule.PolarityNone }
func (s stubResolver) DpNetPair(it item.Item) (item.NetHandle, item.NetHandle, bool) {
	return item.NoNet, item.NoNet, false
}
func (s stubResolver) IsInNetTie(it item.Item) bool                             { return false }
func (s stubResolver) IsNetTieExclusion(a, b item.Item, contact item.Point) bool { return false }
func (s stubResolver) IsDrilledHole(it item.Item) bool                          { return false }
func (s stubResolver) IsNonPlatedSlot(it item.Item) bool                        { return false }
func (s stubResolver) IsKeepout(it item.Item, layer int) bool                   { return false }
func (s stubResolver) ClearanceEpsilon() int64                                  { return 0 }

func sizes() rule.Sizes {
	return rule.Sizes{
		Clearance: 100000, TrackWidth: 200000, BoardMinTrackWidth: 200000,
		DiffPairWidth: 150000, DiffPairGap: 150000,
	}
}

func TestDiffPair_Start_RejectsSpacingOutsideTolerance(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	p := diffpair.New(root, diffpair.WithSizes(sizes()), diffpair.WithLayer(0), diffpair.WithNets(1, 2))

	err := p.Start(geom.Pt(0, 0), geom.Pt(0, 5000000))
	assert.ErrorIs(t, err, diffpair.ErrGapOutOfTolerance)
}

func TestDiffPair_StartMoveFixRoute_CommitsBothNets(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	p := diffpair.New(root, diffpair.WithMode(diffpair.ModeShove), diffpair.WithSizes(sizes()), diffpair.WithLayer(0), diffpair.WithNets(1, 2))

	anchorDist := sizes().DiffPairAnchorDistance()
	require.NoError(t, p.Start(geom.Pt(0, -anchorDist/2), geom.Pt(0, anchorDist/2)))
	assert.Equal(t, diffpair.StateRoute, p.State())

	require.NoError(t, p.Move(geom.Pt(2000000, 0)))
	assert.False(t, p.HeadP().IsEmpty())
	assert.False(t, p.HeadN().IsEmpty())

	ok, err := p.FixRoute(true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, diffpair.StateFinish, p.State())

	items := p.Node().AllItems()
	require.Len(t, items, 2)
	nets := map[item.NetHandle]bool{}
	for _, it := range items {
		nets[it.Net()] = true
	}
	assert.True(t, nets[1])
	assert.True(t, nets[2])
}

func TestDiffPair_UnfixRoute_RemovesBothNets(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	p := diffpair.New(root, diffpair.WithMode(diffpair.ModeShove), diffpair.WithSizes(sizes()), diffpair.WithLayer(0), diffpair.WithNets(1, 2))

	anchorDist := sizes().DiffPairAnchorDistance()
	require.NoError(t, p.Start(geom.Pt(0, -anchorDist/2), geom.Pt(0, anchorDist/2)))
	require.NoError(t, p.Move(geom.Pt(2000000, 0)))
	ok, err := p.FixRoute(false)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, p.Node().AllItems())

	require.NoError(t, p.UnfixRoute())
	assert.Empty(t, p.Node().AllItems())
	assert.Equal(t, diffpair.StateRoute, p.State())
}

func TestDiffPair_Abort_DiscardsInteractionBranch(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	p := diffpair.New(root, diffpair.WithMode(diffpair.ModeShove), diffpair.WithSizes(sizes()), diffpair.WithLayer(0), diffpair.WithNets(1, 2))

	anchorDist := sizes().DiffPairAnchorDistance()
	require.NoError(t, p.Start(geom.Pt(0, -anchorDist/2), geom.Pt(0, anchorDist/2)))
	require.NoError(t, p.Move(geom.Pt(2000000, 0)))
	_, err := p.FixRoute(false)
	require.NoError(t, err)

	p.Abort()
	assert.Equal(t, diffpair.StateStart, p.State())
	assert.Same(t, root, p.Node())
	assert.Empty(t, root.AllItems())
}
