package node_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/iface"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	clearance int64
}

func (s stubResolver) Clearance(a, b item.Item, useEpsilon bool) int64 { return s.clearance }
func (s stubResolver) QueryConstraint(kind rule.ConstraintKind, a, b item.Item, layer int) (rule.Constraint, bool) {
	return rule.Constraint{}, false
}
func (s stubResolver) DpCoupledNet(net item.NetHandle) item.NetHandle { return item.NoNet }
func (s stubResolver) DpNetPolarity(net item.NetHandle) rule.Polarity { return rule.PolarityNone }
func (s stubResolver) DpNetPair(it item.Item) (item.NetHandle, item.NetHandle, bool) {
	return item.NoNet, item.NoNet, false
}
func (s stubResolver) IsInNetTie(it item.Item) bool                            { return false }
func (s stubResolver) IsNetTieExclusion(a, b item.Item, contact item.Point) bool { return false }
func (s stubResolver) IsDrilledHole(it item.Item) bool                         { return false }
func (s stubResolver) IsNonPlatedSlot(it item.Item) bool                       { return false }
func (s stubResolver) IsKeepout(it item.Item, layer int) bool                  { return false }
func (s stubResolver) ClearanceEpsilon() int64                                { return 0 }

var _ rule.Resolver = stubResolver{}

type stubBoard struct {
	added, removed []item.Linked
	updated        [][2]item.Linked
	committed      bool
}

func (b *stubBoard) SyncWorld(into iface.NodeSyncTarget) error  { return nil }
func (b *stubBoard) AddItem(it item.Linked) error               { b.added = append(b.added, it); return nil }
func (b *stubBoard) RemoveItem(it item.Linked) error            { b.removed = append(b.removed, it); return nil }
func (b *stubBoard) UpdateItem(old, new item.Linked) error {
	b.updated = append(b.updated, [2]item.Linked{old, new})
	return nil
}
func (b *stubBoard) Commit() error                                            { b.committed = true; return nil }
func (b *stubBoard) GetRuleResolver() rule.Resolver                           { return stubResolver{} }
func (b *stubBoard) GetNetName(h item.NetHandle) string                      { return "" }
func (b *stubBoard) GetNetFromHandle(h item.NetHandle) (string, bool)         { return "", false }
func (b *stubBoard) GetPNSLayerFromBoardLayer(l int) int                     { return l }
func (b *stubBoard) GetBoardLayerFromPNSLayer(l int) int                     { return l }
func (b *stubBoard) IsFlashedOnLayer(it item.Item, layers item.LayerRange) bool { return false }
func (b *stubBoard) DisplayItem(it item.Item)                                 {}
func (b *stubBoard) HideItem(it item.Item)                                    {}
func (b *stubBoard) UpdateNet(h item.NetHandle)                               {}
func (b *stubBoard) SetCommitFlags(flags iface.CommitFlag)                    {}

var _ iface.Board = (*stubBoard)(nil)

func seg(a, b geom.Point, net item.NetHandle, width int64) *item.Segment {
	return &item.Segment{
		LinkedBase: item.NewLinkedBase(item.SingleLayer(0), net),
		Shape:      geom.Seg(a, b),
		Width:      width,
	}
}

func TestAdd_LooksUpFromRoot(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	s := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)

	ok, err := root.Add(s, false)
	require.NoError(t, err)
	assert.True(t, ok)

	got, found := root.Lookup(s.UID())
	require.True(t, found)
	assert.Equal(t, s.UID(), got.UID())
}

func TestAdd_RejectsRedundantSegmentUnlessAllowed(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	s1 := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	s2 := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)

	ok1, err := root.Add(s1, false)
	require.NoError(t, err)
	assert.True(t, ok1)

	ok2, err := root.Add(s2, false)
	require.NoError(t, err)
	assert.False(t, ok2)

	ok3, err := root.Add(s2, true)
	require.NoError(t, err)
	assert.True(t, ok3)
}

func TestBranch_RemoveMasksItemWithoutAffectingRoot(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	s := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	_, err := root.Add(s, false)
	require.NoError(t, err)

	child := root.Branch()
	require.NoError(t, child.Remove(s))

	assert.False(t, child.Has(s.UID()))
	assert.True(t, root.Has(s.UID()))
}

func TestCommit_GraftsChildAdditionsIntoRoot(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	child := root.Branch()
	s := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	_, err := child.Add(s, false)
	require.NoError(t, err)

	board := &stubBoard{}
	require.NoError(t, root.Commit(child, board))

	assert.True(t, board.committed)
	require.Len(t, board.added, 1)
	assert.Equal(t, s.UID(), board.added[0].UID())
	assert.True(t, root.Has(s.UID()))
}

func TestCommit_DeniedForGrandchild(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	child := root.Branch()
	grandchild := child.Branch()

	err := root.Commit(grandchild, &stubBoard{})
	assert.ErrorIs(t, err, node.ErrCommitDeniedNotRoot)
}

func TestFlatten_CollapsesMultiLevelChainIntoADirectChild(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	kept := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	_, err := root.Add(kept, false)
	require.NoError(t, err)

	level1 := root.Branch()
	shoved := seg(geom.Pt(1000000, 0), geom.Pt(2000000, 0), 1, 200000)
	_, err = level1.Add(shoved, false)
	require.NoError(t, err)
	require.NoError(t, level1.Remove(kept))

	level2 := level1.Branch()
	replacement := seg(geom.Pt(0, 0), geom.Pt(1500000, 500000), 1, 200000)
	_, err = level2.Add(replacement, false)
	require.NoError(t, err)

	flat := root.Flatten(level2)
	assert.True(t, flat.Has(shoved.UID()))
	assert.True(t, flat.Has(replacement.UID()))
	assert.False(t, flat.Has(kept.UID()))

	board := &stubBoard{}
	require.NoError(t, root.Commit(flat, board))
	assert.True(t, board.committed)
	assert.Len(t, board.added, 2)
	assert.Len(t, board.removed, 1)
	assert.True(t, root.Has(shoved.UID()))
	assert.True(t, root.Has(replacement.UID()))
	assert.False(t, root.Has(kept.UID()))
}

func TestAssembleLine_WalksThroughTrivialJoints(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	s1 := seg(geom.Pt(0, 0), geom.Pt(1000, 0), 1, 200000)
	s2 := seg(geom.Pt(1000, 0), geom.Pt(2000, 0), 1, 200000)
	s3 := seg(geom.Pt(2000, 0), geom.Pt(3000, 0), 1, 200000)
	for _, s := range []*item.Segment{s1, s2, s3} {
		_, err := root.Add(s, false)
		require.NoError(t, err)
	}

	line, err := root.AssembleLine(s2, true, false, false)
	require.NoError(t, err)
	require.Equal(t, 4, line.Chain.Len())
	assert.Equal(t, []item.UID{s1.UID(), s2.UID(), s3.UID()}, line.Links)
}

func TestAssembleLine_StopsAtBranchingJoint(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	s1 := seg(geom.Pt(0, 0), geom.Pt(1000, 0), 1, 200000)
	s2 := seg(geom.Pt(1000, 0), geom.Pt(2000, 0), 1, 200000)
	s3 := seg(geom.Pt(1000, 0), geom.Pt(1000, 1000), 1, 200000)
	for _, s := range []*item.Segment{s1, s2, s3} {
		_, err := root.Add(s, false)
		require.NoError(t, err)
	}

	line, err := root.AssembleLine(s1, true, false, false)
	require.NoError(t, err)
	assert.Equal(t, []item.UID{s1.UID()}, line.Links)
	assert.Equal(t, 2, line.Chain.Len())
}

func TestQueryColliding_DetectsNearbyDifferentNetTrack(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	s1 := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	_, err := root.Add(s1, false)
	require.NoError(t, err)

	candidate := seg(geom.Pt(0, 50000), geom.Pt(1000000, 50000), 2, 200000)
	hits := root.QueryColliding(candidate, node.CollisionOptions{DifferentNetsOnly: true})
	require.Len(t, hits, 1)
	assert.Equal(t, s1.UID(), hits[0].Item.UID())
}

func TestQueryColliding_IgnoresSameNet(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	s1 := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	_, err := root.Add(s1, false)
	require.NoError(t, err)

	candidate := seg(geom.Pt(0, 50000), geom.Pt(1000000, 50000), 1, 200000)
	hits := root.QueryColliding(candidate, node.CollisionOptions{DifferentNetsOnly: true})
	assert.Empty(t, hits)
}

func TestHitTest_FindsItemUnderPoint(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	s1 := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	_, err := root.Add(s1, false)
	require.NoError(t, err)

	hits := root.HitTest(geom.Pt(500000, 0), 0)
	require.Len(t, hits, 1)
	assert.Equal(t, s1.UID(), hits[0].UID())
}

func TestQueryColliding_SeesBranchLocalAddition(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	branch := root.Branch()

	shifted := seg(geom.Pt(0, 50000), geom.Pt(1000000, 50000), 2, 200000)
	_, err := branch.Add(shifted, false)
	require.NoError(t, err)

	mover := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	hits := branch.QueryColliding(mover, node.CollisionOptions{DifferentNetsOnly: true})
	require.Len(t, hits, 1)
	assert.Equal(t, shifted.UID(), hits[0].Item.UID())
}

func TestHitTest_SeesBranchLocalAddition(t *testing.T) {
	root := node.NewRoot(stubResolver{clearance: 100000})
	branch := root.Branch()

	s1 := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	_, err := branch.Add(s1, false)
	require.NoError(t, err)

	hits := branch.HitTest(geom.Pt(500000, 0), 0)
	require.Len(t, hits, 1)
	assert.Equal(t, s1.UID(), hits[0].UID())
}
