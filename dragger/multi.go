package dragger

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/shove"
	"github.com/solderpath/pns/walkaround"
)

// seedState tracks one member of a multi-drag group between AddSeed and
// FixDrag: its original (undragged) geometry and its current candidate.
type seedState struct {
	mode Mode

	// ModeCorner / ModeSegment
	line      *item.Line
	idx       int
	baseChain geom.Chain
	current   geom.Chain

	// ModeVia
	via       *item.Via
	basePt    geom.Point
	currentPt geom.Point
}

// MultiDragger drags several seed items under one shared cursor delta,
// generalizing Dragger the way KiCad's pns_multi_dragger.h generalizes its
// single-item dragger: every member moves by the same offset from its own
// starting position, and the whole group is resolved and committed as one
// node delta.
type MultiDragger struct {
	root   *node.Node
	branch *node.Node

	interactionRoot *node.Node
	opts            Options

	items       []*seedState
	startCursor geom.Point

	failureReason string
}

// NewMulti builds an empty MultiDragger; call AddSeed for each item to
// drag together before Start.
func NewMulti(root *node.Node, opts ...Option) *MultiDragger {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &MultiDragger{root: root, branch: root, opts: o}
}

// Node returns the branch the multi-drag is currently operating on.
func (m *MultiDragger) Node() *node.Node { return m.branch }

// FailureReason reports why the last Move fell back to mark-obstacles for
// the whole group, or "" if the group is collision-free.
func (m *MultiDragger) FailureReason() string { return m.failureReason }

// AddSeed registers a via or line member of the group, resolved against
// root the same way Dragger.Start resolves a single seed. Must be called
// before Start.
func (m *MultiDragger) AddSeed(seed item.Linked, grabPoint geom.Point) error {
	if via, ok := seed.(*item.Via); ok {
		m.items = append(m.items, &seedState{mode: ModeVia, via: via, basePt: via.Pos, currentPt: via.Pos})
		return nil
	}

	line, err := m.root.AssembleLine(seed, true, false, false)
	if err != nil {
		return ErrSeedNotAssemblable
	}
	idx := nearestVertexIndex(line.Chain, grabPoint)
	mode := ModeCorner
	if idx != 0 && idx != line.Chain.Len()-1 {
		if idx > 0 {
			idx--
		}
		mode = ModeSegment
	}
	m.items = append(m.items, &seedState{mode: mode, line: line, idx: idx, baseChain: line.Chain, current: line.Chain})
	return nil
}

// Start opens the shared drag branch once every seed has been added.
func (m *MultiDragger) Start(cursor geom.Point) error {
	if len(m.items) == 0 {
		return ErrEmptyGroup
	}
	if m.interactionRoot != nil {
		return ErrAlreadyDragging
	}
	m.branch = m.root.Branch()
	m.interactionRoot = m.branch
	m.startCursor = cursor
	m.failureReason = ""
	return nil
}

// Move applies the cursor's delta from Start to every member, then
// resolves the whole group together: a shove attempt that fails for any
// member falls the entire group back to walkaround, and a walkaround that
// fails for any member falls the entire group back to mark-obstacles, so
// the group always moves (or marks) coherently rather than piecewise.
func (m *MultiDragger) Move(cursor geom.Point) error {
	if m.interactionRoot == nil {
		return ErrNotDragging
	}
	delta := geom.VectorTo(m.startCursor, cursor)

	for _, s := range m.items {
		switch s.mode {
		case ModeVia:
			s.currentPt = delta.Apply(s.basePt)
		case ModeCorner:
			s.current = dragCorner(s.baseChain, s.idx, delta.Apply(s.baseChain.Points[s.idx]), m.opts.Angle)
		case ModeSegment:
			mid := geom.Pt((s.baseChain.Points[s.idx].X+s.baseChain.Points[s.idx+1].X)/2, (s.baseChain.Points[s.idx].Y+s.baseChain.Points[s.idx+1].Y)/2)
			s.current = dragSegment(s.baseChain, s.idx, delta.Apply(mid))
		}
	}

	if m.opts.Collision == CollisionShove {
		if attempt, ok := m.attemptShoveAll(); ok {
			m.branch = attempt
			m.failureReason = ""
			return nil
		}
	}
	if m.opts.Collision == CollisionShove || m.opts.Collision == CollisionWalkaround {
		if m.attemptWalkaroundAll() {
			m.failureReason = ""
			return nil
		}
	}
	m.failureReason = ErrAllModesFailed.Error()
	return nil
}

func (m *MultiDragger) attemptShoveAll() (*node.Node, bool) {
	attempt := m.branch.Branch()
	for _, s := range m.items {
		var segs []geom.Segment
		if s.mode == ModeVia {
			mover := &item.Via{LinkedBase: item.NewLinkedBase(m.viaLayers(s), m.opts.Net), Pos: s.currentPt, Mode: s.via.Mode, Normal: s.via.Normal, Drill: s.via.Drill, Type: s.via.Type}
			mover.SetVirtual(true)
			result, err := shove.Propagate(attempt, mover, shove.WithDiag(m.opts.Diag))
			if err != nil || result.State != shove.StateStable {
				attempt.Kill()
				return nil, false
			}
			continue
		}
		segs = s.current.Segments()
		for _, seg := range segs {
			if seg.IsDegenerate() {
				continue
			}
			mover := &item.Segment{LinkedBase: item.NewLinkedBase(item.SingleLayer(m.opts.Layer), m.opts.Net), Shape: seg, Width: m.opts.Sizes.TrackWidth}
			mover.SetVirtual(true)
			result, err := shove.Propagate(attempt, mover, shove.WithDiag(m.opts.Diag))
			if err != nil || result.State != shove.StateStable {
				attempt.Kill()
				return nil, false
			}
		}
	}
	return attempt, true
}

func (m *MultiDragger) attemptWalkaroundAll() bool {
	for _, s := range m.items {
		if s.mode == ModeVia {
			continue // vias have no path to detour; shove or mark is their only recourse
		}
		detour, err := walkaround.Attempt(m.branch, s.current, walkaround.Options{
			Layer:    m.opts.Layer,
			Net:      m.opts.Net,
			Width:    m.opts.Sizes.TrackWidth,
			Resolver: m.branch.Resolver(),
			Diag:     m.opts.Diag,
		})
		if err != nil {
			return false
		}
		s.current = detour
	}
	return true
}

func (m *MultiDragger) viaLayers(s *seedState) item.LayerRange {
	return s.via.Layers()
}

// FixDrag commits every member's current geometry into the branch.
func (m *MultiDragger) FixDrag() (bool, error) {
	if m.interactionRoot == nil {
		return false, ErrNotDragging
	}
	if !m.opts.CanViolateDRC && m.failureReason != "" {
		return false, nil
	}
	for _, s := range m.items {
		if s.mode == ModeVia {
			moved := *s.via
			moved.Pos = s.currentPt
			if err := m.branch.Remove(s.via); err != nil {
				return false, err
			}
			if _, err := m.branch.Add(&moved, true); err != nil {
				return false, err
			}
			s.via = &moved
			continue
		}
		for _, uid := range s.line.Links {
			if it, ok := m.branch.Lookup(uid); ok {
				if err := m.branch.Remove(it); err != nil {
					return false, err
				}
			}
		}
		for _, seg := range s.current.Segments() {
			if seg.IsDegenerate() {
				continue
			}
			piece := &item.Segment{LinkedBase: item.NewLinkedBase(item.SingleLayer(m.opts.Layer), m.opts.Net), Shape: seg, Width: s.line.Width}
			if _, err := m.branch.Add(piece, true); err != nil {
				return false, err
			}
		}
	}
	m.interactionRoot = nil
	return true, nil
}

// CancelDrag discards the shared branch entirely.
func (m *MultiDragger) CancelDrag() {
	if m.interactionRoot != nil {
		m.interactionRoot.Kill()
	}
	m.branch = m.root
	m.interactionRoot = nil
}
