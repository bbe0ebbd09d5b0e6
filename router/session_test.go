package router_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/iface"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/router"
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

// stubBoard is the host board adapter: SyncWorld optionally seeds a
// preset via so drag tests have something to grab.
type stubBoard struct {
	preset         item.Linked
	added, removed []item.Linked
	committed      bool
}

func (b *stubBoard) SyncWorld(into iface.NodeSyncTarget) error {
	if b.preset != nil {
		_, err := into.Add(b.preset, true)
		return err
	}
	return nil
}
func (b *stubBoard) AddItem(it item.Linked) error    { b.added = append(b.added, it); return nil }
func (b *stubBoard) RemoveItem(it item.Linked) error { b.removed = append(b.removed, it); return nil }
func (b *stubBoard) UpdateItem(old, new item.Linked) error { return nil }
func (b *stubBoard) Commit() error                         { b.committed = true; return nil }
func (b *stubBoard) GetRuleResolver() rule.Resolver         { return stubResolver{clearance: 100000} }
func (b *stubBoard) GetNetName(h item.NetHandle) string     { return "" }
func (b *stubBoard) GetNetFromHandle(h item.NetHandle) (string, bool) { return "", false }
func (b *stubBoard) GetPNSLayerFromBoardLayer(l int) int              { return l }
func (b *stubBoard) GetBoardLayerFromPNSLayer(l int) int              { return l }
func (b *stubBoard) IsFlashedOnLayer(it item.Item, layers item.LayerRange) bool { return false }
func (b *stubBoard) DisplayItem(it item.Item)                                  {}
func (b *stubBoard) HideItem(it item.Item)                                     {}
func (b *stubBoard) UpdateNet(h item.NetHandle)                                {}
func (b *stubBoard) SetCommitFlags(flags iface.CommitFlag)                     {}

var _ iface.Board = (*stubBoard)(nil)

func sizes() rule.Sizes {
	return rule.Sizes{Clearance: 100000, TrackWidth: 200000, BoardMinTrackWidth: 200000}
}

func TestSession_StartRoute_MoveFixRoute_CommitsIntoBoard(t *testing.T) {
	board := &stubBoard{}
	s, err := router.New(board, router.Settings{Mode: 0, Sizes: sizes(), Layer: 0, Net: 1})
	require.NoError(t, err)

	require.NoError(t, s.StartRoute(geom.Pt(0, 0)))
	assert.Equal(t, router.KindRoute, s.Active())

	require.NoError(t, s.Move(geom.Pt(2000000, 0)))
	ok, err := s.FixRoute(true)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, router.KindNone, s.Active())
	assert.True(t, board.committed)
	assert.NotEmpty(t, board.added)
	assert.NotEmpty(t, s.Root().AllItems())
}

func TestSession_StartRoute_RejectsConcurrentInteraction(t *testing.T) {
	board := &stubBoard{}
	s, err := router.New(board, router.Settings{Sizes: sizes(), Layer: 0, Net: 1})
	require.NoError(t, err)

	require.NoError(t, s.StartRoute(geom.Pt(0, 0)))
	err = s.StartRoute(geom.Pt(1000000, 1000000))
	assert.ErrorIs(t, err, router.ErrInteractionInProgress)
}

func TestSession_Abort_LeavesRootUntouched(t *testing.T) {
	board := &stubBoard{}
	s, err := router.New(board, router.Settings{Sizes: sizes(), Layer: 0, Net: 1})
	require.NoError(t, err)

	require.NoError(t, s.StartRoute(geom.Pt(0, 0)))
	require.NoError(t, s.Move(geom.Pt(2000000, 0)))
	_, err = s.FixRoute(false)
	require.NoError(t, err)

	require.NoError(t, s.Abort())
	assert.Equal(t, router.KindNone, s.Active())
	assert.Empty(t, s.Root().AllItems())
}

func TestSession_StartDrag_FixDrag_CommitsMovedVia(t *testing.T) {
	via := &item.Via{
		LinkedBase: item.NewLinkedBase(item.LayerRange{Start: 0, End: 1}, 1),
		Pos:        geom.Pt(0, 0),
		Mode:       item.DiameterNormal,
		Normal:     400000,
		Drill:      200000,
	}
	board := &stubBoard{preset: via}
	s, err := router.New(board, router.Settings{Sizes: sizes(), Layer: 0, Net: 1})
	require.NoError(t, err)

	require.NoError(t, s.StartDrag(via, via.Pos))
	assert.Equal(t, router.KindDrag, s.Active())

	require.NoError(t, s.Move(geom.Pt(1000000, 1000000)))
	ok, err := s.FixDrag()
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, router.KindNone, s.Active())
	assert.True(t, board.committed)
}

func TestSession_FixRoute_BeforeStart_ReturnsErrWrongInteraction(t *testing.T) {
	board := &stubBoard{}
	s, err := router.New(board, router.Settings{Sizes: sizes(), Layer: 0, Net: 1})
	require.NoError(t, err)

	_, err = s.FixRoute(true)
	assert.ErrorIs(t, err, router.ErrWrongInteraction)
}
