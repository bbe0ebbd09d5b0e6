package placer_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/placer"
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
	return rule.Sizes{Clearance: 100000, TrackWidth: 200000, BoardMinTrackWidth: 200000}
}

func TestPlacer_StartMoveFixRoute_CommitsSegmentsIntoBranch(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	p := placer.New(root, placer.WithMode(placer.ModeShove), placer.WithSizes(sizes()), placer.WithLayer(0), placer.WithNet(1))

	require.NoError(t, p.Start(geom.Pt(0, 0)))
	assert.Equal(t, placer.StateRoute, p.State())

	require.NoError(t, p.Move(geom.Pt(1000000, 0)))
	assert.False(t, p.Head().IsEmpty())

	ok, err := p.FixRoute(true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, placer.StateFinish, p.State())
	assert.NotEmpty(t, p.Node().AllItems())
}

func TestPlacer_Start_RejectsNonRoutablePoint(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	blocker := &item.Solid{
		LinkedBase: item.NewLinkedBase(item.SingleLayer(0), item.NoNet),
		Rect:       geom.Rect{Min: geom.Pt(-50000, -50000), Max: geom.Pt(50000, 50000)},
		Circle:     &geom.Circle{Center: geom.Pt(0, 0), Radius: 80000},
		IsKeepout:  true,
	}
	_, err := root.Add(blocker, false)
	require.NoError(t, err)

	p := placer.New(root, placer.WithSizes(sizes()), placer.WithLayer(0), placer.WithNet(1))
	err = p.Start(geom.Pt(0, 0))
	assert.ErrorIs(t, err, placer.ErrNonRoutableStartPoint)
}

func TestPlacer_UnfixRoute_RemovesCommittedSegments(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	p := placer.New(root, placer.WithMode(placer.ModeShove), placer.WithSizes(sizes()), placer.WithLayer(0), placer.WithNet(1))

	require.NoError(t, p.Start(geom.Pt(0, 0)))
	require.NoError(t, p.Move(geom.Pt(1000000, 0)))
	ok, err := p.FixRoute(false)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, p.Node().AllItems())

	require.NoError(t, p.UnfixRoute())
	assert.Empty(t, p.Node().AllItems())
	assert.Equal(t, placer.StateRoute, p.State())
}

func TestPlacer_Abort_DiscardsInteractionBranch(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	p := placer.New(root, placer.WithMode(placer.ModeShove), placer.WithSizes(sizes()), placer.WithLayer(0), placer.WithNet(1))

	require.NoError(t, p.Start(geom.Pt(0, 0)))
	require.NoError(t, p.Move(geom.Pt(1000000, 0)))
	_, err := p.FixRoute(false)
	require.NoError(t, err)

	p.Abort()
	assert.Equal(t, placer.StateStart, p.State())
	assert.Same(t, root, p.Node())
	assert.Empty(t, root.AllItems())
}
