package shove_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/rule"
	"github.com/solderpath/pns/shove"
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
func (s stubResolver) ClearanceEpsilon() int64                                 { return 0 }

func seg(a, b geom.Point, net item.NetHandle, width int64) *item.Segment {
	return &item.Segment{
		LinkedBase: item.NewLinkedBase(item.SingleLayer(0), net),
		Shape:      geom.Seg(a, b),
		Width:      width,
	}
}

func TestPropagate_PushesSingleObstacleClear(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	obstacle := seg(geom.Pt(0, 50000), geom.Pt(1000000, 50000), 2, 200000)
	_, err := root.Add(obstacle, false)
	require.NoError(t, err)

	mover := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	branch := root.Branch()
	_, err = branch.Add(mover, false)
	require.NoError(t, err)

	result, err := shove.Propagate(branch, mover)
	require.NoError(t, err)
	assert.Equal(t, shove.StateStable, result.State)
	require.Len(t, result.Shifted, 1)
	assert.Equal(t, obstacle.UID(), result.Shifted[0].UID())
}

func TestPropagate_FailsOnLockedObstacle(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	obstacle := seg(geom.Pt(0, 50000), geom.Pt(1000000, 50000), 2, 200000)
	obstacle.SetRoutable(false)
	_, err := root.Add(obstacle, false)
	require.NoError(t, err)

	mover := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	branch := root.Branch()
	_, err = branch.Add(mover, false)
	require.NoError(t, err)

	result, err := shove.Propagate(branch, mover)
	assert.ErrorIs(t, err, shove.ErrObstacleLocked)
	assert.Equal(t, shove.StateFail, result.State)
}
