package dragger

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/shove"
	"github.com/solderpath/pns/walkaround"
)

// Dragger grabs an existing linked item (segment, corner, or via) and
// follows the cursor, resolving collisions the same way the line placer
// does. Active state lives on a branch opened off root at Start, killed
// on CancelDrag; FixDrag writes the result into that branch and leaves
// committing it to the caller.
type Dragger struct {
	root   *node.Node
	branch *node.Node

	interactionRoot *node.Node
	opts            Options

	mode Mode

	// line-drag state (ModeCorner / ModeSegment)
	line    *item.Line
	idx     int
	current geom.Chain

	// via-drag state (ModeVia)
	via       *item.Via
	currentPt geom.Point

	failureReason string
}

// New builds a Dragger bound to root.
func New(root *node.Node, opts ...Option) *Dragger {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Dragger{root: root, branch: root, opts: o}
}

// Node returns the branch the dragger is currently operating on.
func (d *Dragger) Node() *node.Node { return d.branch }

// FailureReason returns why the last Move fell back to mark-obstacles, or
// "" if the drag is currently collision-free.
func (d *Dragger) FailureReason() string { return d.failureReason }

// Start begins dragging seed from grabPoint: a Via is dragged directly by
// ModeVia; a Segment/Arc is assembled into its owning Line and the line
// vertex nearest grabPoint is found: if it is the line's first or last
// vertex that vertex is dragged (ModeCorner), otherwise the edge ending at
// that vertex is dragged (ModeSegment).
func (d *Dragger) Start(seed item.Linked, grabPoint geom.Point) error {
	if d.interactionRoot != nil {
		return ErrAlreadyDragging
	}

	d.branch = d.root.Branch()
	d.interactionRoot = d.branch
	d.failureReason = ""

	if via, ok := seed.(*item.Via); ok {
		d.mode = ModeVia
		d.via = via
		d.currentPt = via.Pos
		return nil
	}

	line, err := d.branch.AssembleLine(seed, true, false, false)
	if err != nil {
		d.interactionRoot.Kill()
		d.interactionRoot = nil
		return ErrSeedNotAssemblable
	}
	d.line = line
	d.current = line.Chain
	d.idx = nearestVertexIndex(line.Chain, grabPoint)

	if d.idx == 0 || d.idx == line.Chain.Len()-1 {
		d.mode = ModeCorner
	} else {
		edgeIdx := d.idx
		if d.idx > 0 {
			edgeIdx = d.idx - 1
		}
		d.mode = ModeSegment
		d.idx = edgeIdx
	}
	return nil
}

// Move recomputes the dragged geometry for the new cursor position and
// resolves it through mark-obstacles, walkaround, or shove per Options.
func (d *Dragger) Move(cursor geom.Point) error {
	if d.interactionRoot == nil {
		return ErrNotDragging
	}

	if d.mode == ModeVia {
		d.currentPt = cursor
		d.failureReason = d.resolveVia(cursor)
		return nil
	}

	var candidate geom.Chain
	switch d.mode {
	case ModeCorner:
		candidate = dragCorner(d.current, d.idx, cursor, d.opts.Angle)
	case ModeSegment:
		candidate = dragSegment(d.current, d.idx, cursor)
	}

	chain, branch, reason := d.resolveChain(candidate)
	d.current = chain
	d.branch = branch
	d.failureReason = reason
	return nil
}

// resolveVia tries to move the via's transient copy to dst, shoving
// anything it would now overlap when opts.Collision is CollisionShove. No
// walkaround is attempted for a via; if the shove fails (or is not
// selected) any remaining overlap is reported as a violation.
func (d *Dragger) resolveVia(dst geom.Point) string {
	probe := &item.Via{
		LinkedBase: item.NewLinkedBase(d.via.Layers(), d.via.Net()),
		Pos:        dst,
		Mode:       d.via.Mode,
		Normal:     d.via.Normal,
		Front:      d.via.Front,
		Inner:      d.via.Inner,
		Back:       d.via.Back,
		Drill:      d.via.Drill,
		Type:       d.via.Type,
	}
	probe.SetVirtual(true)

	if d.opts.Collision == CollisionShove {
		attempt := d.branch.Branch()
		result, err := shove.Propagate(attempt, probe, shove.WithDiag(d.opts.Diag))
		if err == nil && result.State == shove.StateStable {
			d.branch = attempt
			return ""
		}
		attempt.Kill()
	}

	layer := d.via.Layers().Start
	if hits := d.branch.QueryColliding(probe, node.CollisionOptions{DifferentNetsOnly: true, Layer: &layer, LimitCount: 1}); len(hits) > 0 {
		return ErrAllModesFailed.Error()
	}
	return ""
}

// resolveChain dispatches a candidate line chain through shove, then
// walkaround, then mark-obstacles, mirroring placer.resolveHead.
func (d *Dragger) resolveChain(candidate geom.Chain) (geom.Chain, *node.Node, string) {
	if d.opts.Collision == CollisionShove {
		if attempt, ok := d.attemptShove(candidate); ok {
			return candidate, attempt, ""
		}
	}
	if d.opts.Collision == CollisionShove || d.opts.Collision == CollisionWalkaround {
		if detour, err := walkaround.Attempt(d.branch, candidate, walkaround.Options{
			Layer:    d.opts.Layer,
			Net:      d.opts.Net,
			Width:    d.opts.Sizes.TrackWidth,
			Resolver: d.branch.Resolver(),
			Diag:     d.opts.Diag,
		}); err == nil {
			return detour, d.branch, ""
		}
	}
	return candidate, d.branch, d.violationReason(candidate)
}

func (d *Dragger) attemptShove(candidate geom.Chain) (*node.Node, bool) {
	attempt := d.branch.Branch()
	for _, s := range candidate.Segments() {
		if s.IsDegenerate() {
			continue
		}
		mover := &item.Segment{
			LinkedBase: item.NewLinkedBase(item.SingleLayer(d.opts.Layer), d.opts.Net),
			Shape:      s,
			Width:      d.opts.Sizes.TrackWidth,
		}
		mover.SetVirtual(true)
		result, err := shove.Propagate(attempt, mover, shove.WithDiag(d.opts.Diag))
		if err != nil || result.State != shove.StateStable {
			attempt.Kill()
			return nil, false
		}
	}
	return attempt, true
}

func (d *Dragger) violationReason(candidate geom.Chain) string {
	layer := d.opts.Layer
	for _, s := range candidate.Segments() {
		probe := &item.Segment{
			LinkedBase: item.NewLinkedBase(item.SingleLayer(d.opts.Layer), d.opts.Net),
			Shape:      s,
			Width:      d.opts.Sizes.TrackWidth,
		}
		if hits := d.branch.QueryColliding(probe, node.CollisionOptions{DifferentNetsOnly: true, Layer: &layer, LimitCount: 1}); len(hits) > 0 {
			return ErrAllModesFailed.Error()
		}
	}
	return ""
}

// FixDrag commits the dragged geometry into the branch: for a via it moves
// the via in place; for a line it removes the original links and adds
// fresh segments along the new chain. Returns false without mutating
// anything if the result still violates clearance and CanViolateDRC is
// false.
func (d *Dragger) FixDrag() (bool, error) {
	if d.interactionRoot == nil {
		return false, ErrNotDragging
	}

	if d.mode == ModeVia {
		if !d.opts.CanViolateDRC && d.failureReason != "" {
			return false, nil
		}
		moved := *d.via
		moved.Pos = d.currentPt
		if err := d.branch.Remove(d.via); err != nil {
			return false, err
		}
		if _, err := d.branch.Add(&moved, true); err != nil {
			return false, err
		}
		d.via = &moved
		d.interactionRoot = nil
		return true, nil
	}

	if !d.opts.CanViolateDRC && d.failureReason != "" {
		return false, nil
	}

	for _, uid := range d.line.Links {
		if it, ok := d.branch.Lookup(uid); ok {
			if err := d.branch.Remove(it); err != nil {
				return false, err
			}
		}
	}
	for _, s := range d.current.Segments() {
		if s.IsDegenerate() {
			continue
		}
		seg := &item.Segment{
			LinkedBase: item.NewLinkedBase(item.SingleLayer(d.opts.Layer), d.opts.Net),
			Shape:      s,
			Width:      d.line.Width,
		}
		if _, err := d.branch.Add(seg, true); err != nil {
			return false, err
		}
	}
	d.interactionRoot = nil
	return true, nil
}

// CancelDrag discards the drag branch entirely, leaving root untouched.
func (d *Dragger) CancelDrag() {
	if d.interactionRoot != nil {
		d.interactionRoot.Kill()
	}
	d.branch = d.root
	d.interactionRoot = nil
}
