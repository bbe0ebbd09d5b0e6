package walkaround_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/hull"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/rule"
	"github.com/solderpath/pns/walkaround"
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

func TestAroundHull_PicksShorterDetour(t *testing.T) {
	rect := geom.Rect{Min: geom.Pt(0, 0), Max: geom.Pt(1000000, 1000000)}
	h := hull.Octagon(rect, 100000)

	entry := geom.Pt(-100000, 500000)
	exit := geom.Pt(1100000, 500000)

	detour := walkaround.AroundHull(h, entry, exit)
	require.NotEmpty(t, detour)
	assert.True(t, detour[0].Distance(entry) < 1000)
	assert.True(t, detour[len(detour)-1].Distance(exit) < 1000)
}

func TestAttempt_StraightensAroundSingleObstacle(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	obstacle := &item.Solid{
		LinkedBase: item.NewLinkedBase(item.SingleLayer(0), 2),
		Rect:       geom.Rect{Min: geom.Pt(400000, -200000), Max: geom.Pt(600000, 200000)},
	}
	_, err := root.Add(obstacle, false)
	require.NoError(t, err)

	path := geom.NewChain(geom.Pt(0, 0), geom.Pt(1000000, 0))
	opts := walkaround.Options{
		Layer:    0,
		Net:      1,
		Width:    200000,
		Resolver: stubResolver{clearance: 100000},
	}

	result, err := walkaround.Attempt(root, path, opts)
	require.NoError(t, err)
	assert.Greater(t, result.Len(), 2)
}
