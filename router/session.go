package router

import (
	"fmt"

	"github.com/solderpath/pns/diffpair"
	"github.com/solderpath/pns/dragger"
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/iface"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/logger"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/placer"
)

// Session is the explicit per-interaction context §9 calls for in place
// of the original singleton router. It owns one root node synced from the
// host board at construction, and at most one open placer/dragger/
// diffpair interaction at a time.
type Session struct {
	board    iface.Board
	root     *node.Node
	settings Settings
	replay   iface.Logger
	diag     logger.Diag

	active   Kind
	placer   *placer.Placer
	dragger  *dragger.Dragger
	multi    *dragger.MultiDragger
	diffpair *diffpair.Placer
}

// New builds a Session bound to board: it asks the board for its rule
// resolver, creates a root node, and has the board populate it via
// SyncWorld before returning.
func New(board iface.Board, settings Settings, opts ...Option) (*Session, error) {
	root := node.NewRoot(board.GetRuleResolver())
	if err := board.SyncWorld(root); err != nil {
		return nil, fmt.Errorf("router: sync world: %w", err)
	}
	s := &Session{board: board, root: root, settings: settings}
	for _, fn := range opts {
		fn(s)
	}
	return s, nil
}

// Root returns the session's root node (read-only outside the current
// interaction's branch, per §5's shared-resource policy).
func (s *Session) Root() *node.Node { return s.root }

// Active reports which interaction, if any, is currently open.
func (s *Session) Active() Kind { return s.active }

// Settings returns the current configuration snapshot.
func (s *Session) Settings() Settings { return s.settings }

// SetSettings replaces the configuration snapshot applied to the next
// interaction Start* opens. Refused while an interaction is open, since
// the open interaction already captured its own Options copy.
func (s *Session) SetSettings(settings Settings) error {
	if s.active != KindNone {
		return ErrInteractionInProgress
	}
	s.settings = settings
	return nil
}

// ActivePlacer returns the open line placer, or nil if Active() != KindRoute.
func (s *Session) ActivePlacer() *placer.Placer { return s.placer }

// ActiveDragger returns the open single-item dragger, or nil if
// Active() != KindDrag.
func (s *Session) ActiveDragger() *dragger.Dragger { return s.dragger }

// ActiveMultiDragger returns the open group dragger, or nil if
// Active() != KindMultiDrag.
func (s *Session) ActiveMultiDragger() *dragger.MultiDragger { return s.multi }

// ActiveDiffPair returns the open differential-pair placer, or nil if
// Active() != KindDiffPair.
func (s *Session) ActiveDiffPair() *diffpair.Placer { return s.diffpair }

func (s *Session) log(kind string, pos geom.Point, items []item.UID) {
	if s.replay == nil {
		return
	}
	s.replay.Log(iface.LogEvent{Kind: kind, Pos: pos, Layer: s.settings.Layer, Items: items, ItemCount: len(items)})
}

// commit flattens branch's full chain back to root (however many levels
// deep a sequence of Move calls grew it) and commits the result through
// the host board, per §4.1's commit ordering.
func (s *Session) commit(branch *node.Node) error {
	flat := s.root.Flatten(branch)
	return s.root.Commit(flat, s.board)
}

// StartRoute begins a new single-line interaction at at, opening a
// Placer configured from the session's current settings.
func (s *Session) StartRoute(at geom.Point) error {
	if s.active != KindNone {
		return ErrInteractionInProgress
	}
	p := placer.New(s.root,
		placer.WithMode(s.settings.Mode),
		placer.WithSizes(s.settings.Sizes),
		placer.WithLayer(s.settings.Layer),
		placer.WithNet(s.settings.Net),
		placer.WithCanViolateDRC(s.settings.CanViolateDRC),
		placer.WithDiag(s.diag))
	if err := p.Start(at); err != nil {
		return err
	}
	s.placer = p
	s.active = KindRoute
	s.log("start-route", at, nil)
	return nil
}

// StartDiffPair begins a new coupled-pair interaction at the given P/N
// anchors, opening a diffpair.Placer configured from the session's
// current settings.
func (s *Session) StartDiffPair(anchorP, anchorN geom.Point) error {
	if s.active != KindNone {
		return ErrInteractionInProgress
	}
	dp := diffpair.New(s.root,
		diffpair.WithMode(s.settings.Mode),
		diffpair.WithSizes(s.settings.Sizes),
		diffpair.WithLayer(s.settings.Layer),
		diffpair.WithNets(s.settings.NetP, s.settings.NetN),
		diffpair.WithCanViolateDRC(s.settings.CanViolateDRC),
		diffpair.WithDiag(s.diag))
	if err := dp.Start(anchorP, anchorN); err != nil {
		return err
	}
	s.diffpair = dp
	s.active = KindDiffPair
	s.log("start-diffpair", anchorP, nil)
	return nil
}

// StartDrag begins dragging a single seed item from grabPoint, opening a
// Dragger configured from the session's current settings.
func (s *Session) StartDrag(seed item.Linked, grabPoint geom.Point) error {
	if s.active != KindNone {
		return ErrInteractionInProgress
	}
	d := dragger.New(s.root,
		dragger.WithCollisionMode(dragCollisionMode(s.settings.Mode)),
		dragger.WithSizes(s.settings.Sizes),
		dragger.WithLayer(s.settings.Layer),
		dragger.WithNet(s.settings.Net),
		dragger.WithCanViolateDRC(s.settings.CanViolateDRC),
		dragger.WithDiag(s.diag))
	if err := d.Start(seed, grabPoint); err != nil {
		return err
	}
	s.dragger = d
	s.active = KindDrag
	s.log("start-drag", grabPoint, []item.UID{seed.UID()})
	return nil
}

// StartMultiDrag begins dragging every seed in seeds together under one
// shared cursor delta from cursor, each grabbed at its own grabPoints[i].
func (s *Session) StartMultiDrag(seeds []item.Linked, grabPoints []geom.Point, cursor geom.Point) error {
	if s.active != KindNone {
		return ErrInteractionInProgress
	}
	if len(seeds) != len(grabPoints) {
		return ErrSeedGrabPointMismatch
	}
	m := dragger.NewMulti(s.root,
		dragger.WithCollisionMode(dragCollisionMode(s.settings.Mode)),
		dragger.WithSizes(s.settings.Sizes),
		dragger.WithLayer(s.settings.Layer),
		dragger.WithNet(s.settings.Net),
		dragger.WithCanViolateDRC(s.settings.CanViolateDRC),
		dragger.WithDiag(s.diag))
	for i, seed := range seeds {
		if err := m.AddSeed(seed, grabPoints[i]); err != nil {
			return err
		}
	}
	if err := m.Start(cursor); err != nil {
		return err
	}
	s.multi = m
	s.active = KindMultiDrag

	uids := make([]item.UID, len(seeds))
	for i, seed := range seeds {
		uids[i] = seed.UID()
	}
	s.log("start-multidrag", cursor, uids)
	return nil
}

// Move advances whichever interaction is open to cursor position at.
func (s *Session) Move(at geom.Point) error {
	switch s.active {
	case KindRoute:
		return s.placer.Move(at)
	case KindDrag:
		return s.dragger.Move(at)
	case KindMultiDrag:
		return s.multi.Move(at)
	case KindDiffPair:
		return s.diffpair.Move(at)
	default:
		return ErrNoInteraction
	}
}

// ToggleVia flips whether the open route/diff-pair interaction terminates
// its current leg with a via.
func (s *Session) ToggleVia() error {
	switch s.active {
	case KindRoute:
		s.placer.ToggleVia()
		return nil
	case KindDiffPair:
		s.diffpair.ToggleVia()
		return nil
	default:
		return ErrWrongInteraction
	}
}

// FixRoute commits the current head of the open route/diff-pair
// interaction onto its tail. When finish is true and the fix succeeds,
// the whole interaction's branch is flattened and committed into root
// through the host board, and the interaction closes.
func (s *Session) FixRoute(finish bool) (bool, error) {
	switch s.active {
	case KindRoute:
		ok, err := s.placer.FixRoute(finish)
		if err != nil || !ok {
			return ok, err
		}
		if finish {
			if err := s.commit(s.placer.Node()); err != nil {
				return false, err
			}
			s.log("fix", geom.Point{}, nil)
			s.placer = nil
			s.active = KindNone
		}
		return true, nil
	case KindDiffPair:
		ok, err := s.diffpair.FixRoute(finish)
		if err != nil || !ok {
			return ok, err
		}
		if finish {
			if err := s.commit(s.diffpair.Node()); err != nil {
				return false, err
			}
			s.log("fix", geom.Point{}, nil)
			s.diffpair = nil
			s.active = KindNone
		}
		return true, nil
	default:
		return false, ErrWrongInteraction
	}
}

// UnfixRoute pops the most recently fixed leg of the open route/diff-pair
// interaction.
func (s *Session) UnfixRoute() error {
	switch s.active {
	case KindRoute:
		return s.placer.UnfixRoute()
	case KindDiffPair:
		return s.diffpair.UnfixRoute()
	default:
		return ErrWrongInteraction
	}
}

// FixDrag commits the open drag/multi-drag interaction's result into
// root through the host board, and closes the interaction.
func (s *Session) FixDrag() (bool, error) {
	switch s.active {
	case KindDrag:
		ok, err := s.dragger.FixDrag()
		if err != nil || !ok {
			return ok, err
		}
		if err := s.commit(s.dragger.Node()); err != nil {
			return false, err
		}
		s.log("fix-drag", geom.Point{}, nil)
		s.dragger = nil
		s.active = KindNone
		return true, nil
	case KindMultiDrag:
		ok, err := s.multi.FixDrag()
		if err != nil || !ok {
			return ok, err
		}
		if err := s.commit(s.multi.Node()); err != nil {
			return false, err
		}
		s.log("fix-drag", geom.Point{}, nil)
		s.multi = nil
		s.active = KindNone
		return true, nil
	default:
		return false, ErrWrongInteraction
	}
}

// CancelDrag discards the open drag/multi-drag interaction, leaving root
// untouched.
func (s *Session) CancelDrag() error {
	switch s.active {
	case KindDrag, KindMultiDrag:
		return s.Abort()
	default:
		return ErrWrongInteraction
	}
}

// Abort cancels whichever interaction is open, per §5's cancellation
// semantics: the placer/dragger kills every child node of its interaction
// root and the session returns to KindNone.
func (s *Session) Abort() error {
	switch s.active {
	case KindRoute:
		s.placer.Abort()
		s.placer = nil
	case KindDrag:
		s.dragger.CancelDrag()
		s.dragger = nil
	case KindMultiDrag:
		s.multi.CancelDrag()
		s.multi = nil
	case KindDiffPair:
		s.diffpair.Abort()
		s.diffpair = nil
	default:
		return ErrNoInteraction
	}
	s.log("abort", geom.Point{}, nil)
	s.active = KindNone
	return nil
}
