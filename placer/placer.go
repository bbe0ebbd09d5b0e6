package placer

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/posture"
	"github.com/solderpath/pns/shove"
	"github.com/solderpath/pns/walkaround"
)

const (
	defaultLockMargin   = 0.35
	defaultUnlockMargin = 0.1
)

// fixedStage is one entry of the undo stack FixRoute pushes onto and
// UnfixRoute pops, letting a chained placement back out of its most
// recent leg without disturbing earlier ones.
type fixedStage struct {
	items      []item.Linked
	pStart     geom.Point
	tailBefore geom.Chain
	viaItem    item.Linked
}

// Placer drives the START -> ROUTE -> FINISH interaction of §4.5. It owns
// one branch of the world model at a time (the "current node"); shove
// attempts that succeed are adopted as a deeper branch, attempts that fail
// are killed and leave the current branch untouched.
type Placer struct {
	root   *node.Node
	branch *node.Node
	// interactionRoot is the branch Start opened directly off root; Abort
	// kills this (and everything nested under it by later shove attempts)
	// to discard the whole interaction in one call.
	interactionRoot *node.Node
	opts            Options
	tracer          *posture.Tracer

	state  State
	pStart geom.Point
	tail   geom.Chain
	head   geom.Chain

	viaRequested  bool
	lastMode      Mode
	failureReason string

	fixed []fixedStage
}

// New builds a Placer bound to root. Start must be called before Move,
// FixRoute, or ToggleVia do anything useful.
func New(root *node.Node, opts ...Option) *Placer {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Placer{
		root:   root,
		branch: root,
		opts:   o,
		tracer: posture.NewTracer(defaultLockMargin, defaultUnlockMargin),
		state:  StateStart,
	}
}

// State returns the placer's current interaction state.
func (p *Placer) State() State { return p.state }

// Node returns the branch the placer is currently operating on (the
// "current node" of §5's shared-resource policy: only this branch-tip is
// ever mutated).
func (p *Placer) Node() *node.Node { return p.branch }

// Head returns the volatile candidate chain from the last Move, empty
// before the first Move of an interaction.
func (p *Placer) Head() geom.Chain { return p.head }

// Tail returns the already-fixed chain for the current interaction.
func (p *Placer) Tail() geom.Chain { return p.tail }

// LastMode reports which collision-resolution mode actually produced the
// current head (may differ from Options.Mode after a fallback).
func (p *Placer) LastMode() Mode { return p.lastMode }

// FailureReason returns the one-line message describing why every mode
// fell back to ModeMarkObstacles on the last Move, or "" if the last head
// was collision-free or mode-resolved.
func (p *Placer) FailureReason() string { return p.failureReason }

func (p *Placer) halfTrackWidth() int64 {
	if p.opts.Sizes.TrackWidth > 0 {
		return p.opts.Sizes.TrackWidth / 2
	}
	return 1
}

// Start begins a new interaction at p: rejects a non-routable start point
// or one that would immediately violate clearance at minimum track width,
// then opens a fresh branch off root.
func (p *Placer) Start(at geom.Point) error {
	if p.state == StateRoute {
		return ErrAlreadyRouting
	}

	for _, hit := range p.root.HitTest(at, p.opts.Layer) {
		if !hit.Routable() {
			return ErrNonRoutableStartPoint
		}
		if s, ok := hit.(*item.Solid); ok && s.IsKeepout {
			return ErrNonRoutableStartPoint
		}
	}

	minWidth := p.opts.Sizes.BoardMinTrackWidth
	if minWidth == 0 {
		minWidth = p.opts.Sizes.TrackWidth
	}
	probe := &item.Segment{
		LinkedBase: item.NewLinkedBase(item.SingleLayer(p.opts.Layer), p.opts.Net),
		Shape:      geom.Seg(at, at),
		Width:      minWidth,
	}
	layer := p.opts.Layer
	if hits := p.root.QueryColliding(probe, node.CollisionOptions{DifferentNetsOnly: true, Layer: &layer}); len(hits) > 0 {
		return ErrStartViolatesDRC
	}

	p.branch = p.root.Branch()
	p.interactionRoot = p.branch
	p.pStart = at
	p.tail = geom.Chain{}
	p.head = geom.Chain{}
	p.viaRequested = false
	p.failureReason = ""
	p.tracer = posture.NewTracer(defaultLockMargin, defaultUnlockMargin)
	p.state = StateRoute
	p.opts.Diag.PlacerTransition(StateStart.String(), StateRoute.String())
	return nil
}

// Move recomputes the head for the new cursor position, handling
// self-intersection/pull-back against the tail and dispatching to the
// configured collision-resolution mode (with fallback).
func (p *Placer) Move(at geom.Point) error {
	if p.state != StateRoute {
		return ErrNotRouting
	}
	p.tracer.Observe(at)

	origin := p.pStart
	if !p.tail.IsEmpty() {
		origin = p.tail.Points[len(p.tail.Points)-1]
	}
	if !p.tail.IsEmpty() {
		if _, nearest, dist := nearestChainPoint(p.tail, at); dist <= float64(p.halfTrackWidth()) {
			p.tail = truncateAt(p.tail, at)
			origin = nearest
		}
	}

	candidate := optimizeTransition(p.tracer.Choose(origin, at))
	head, branch, mode, reason := p.resolveHead(candidate)

	p.head = head
	p.branch = branch
	p.lastMode = mode
	p.failureReason = reason
	return nil
}

// resolveHead tries shove, then walkaround, then mark-obstacles, in that
// order starting from the configured mode (so a placer configured for
// ModeWalkaround never attempts shove, per §4.5 "according to mode").
func (p *Placer) resolveHead(candidate geom.Chain) (geom.Chain, *node.Node, Mode, string) {
	switch p.opts.Mode {
	case ModeShove:
		if attempt, ok := p.attemptShove(candidate); ok {
			return candidate, attempt, ModeShove, ""
		}
		fallthrough
	case ModeWalkaround:
		if detour, err := p.attemptWalkaround(candidate); err == nil {
			return detour, p.branch, ModeWalkaround, ""
		}
		fallthrough
	case ModeMarkObstacles:
		return candidate, p.branch, ModeMarkObstacles, p.violationReason(candidate)
	}
	return candidate, p.branch, ModeMarkObstacles, ""
}

// attemptShove runs the shove engine against a fresh branch for every edge
// of candidate in turn, returning the resulting branch on success. The
// attempt branch is killed on any failure so the placer's current branch
// is left untouched.
func (p *Placer) attemptShove(candidate geom.Chain) (*node.Node, bool) {
	attempt := p.branch.Branch()
	for _, s := range candidate.Segments() {
		if s.IsDegenerate() {
			continue
		}
		mover := &item.Segment{
			LinkedBase: item.NewLinkedBase(item.SingleLayer(p.opts.Layer), p.opts.Net),
			Shape:      s,
			Width:      p.opts.Sizes.TrackWidth,
		}
		mover.SetVirtual(true)
		result, err := shove.Propagate(attempt, mover, shove.WithDiag(p.opts.Diag))
		if err != nil || result.State != shove.StateStable {
			attempt.Kill()
			return nil, false
		}
	}
	return attempt, true
}

// attemptWalkaround detours candidate around whatever it collides with on
// the current branch without moving any obstacle.
func (p *Placer) attemptWalkaround(candidate geom.Chain) (geom.Chain, error) {
	return walkaround.Attempt(p.branch, candidate, walkaround.Options{
		Layer:    p.opts.Layer,
		Net:      p.opts.Net,
		Width:    p.opts.Sizes.TrackWidth,
		Resolver: p.branch.Resolver(),
		Diag:     p.opts.Diag,
	})
}

// violationReason reports why candidate is flagged under mark-obstacles,
// or "" if it is collision-free.
func (p *Placer) violationReason(candidate geom.Chain) string {
	layer := p.opts.Layer
	for _, s := range candidate.Segments() {
		probe := &item.Segment{
			LinkedBase: item.NewLinkedBase(item.SingleLayer(p.opts.Layer), p.opts.Net),
			Shape:      s,
			Width:      p.opts.Sizes.TrackWidth,
		}
		if hits := p.branch.QueryColliding(probe, node.CollisionOptions{DifferentNetsOnly: true, Layer: &layer, LimitCount: 1}); len(hits) > 0 {
			return ErrAllModesFailed.Error()
		}
	}
	return ""
}

// ToggleVia flips whether FixRoute should terminate the current leg with a
// via instead of a bare endpoint.
func (p *Placer) ToggleVia() { p.viaRequested = !p.viaRequested }

// FixRoute commits the current head onto the tail as real linked items in
// the current branch, optionally appending a via, and either rebases
// p_start for a chained placement or ends the interaction when finish is
// true. If the head violates clearance and the router is not configured
// to allow DRC violations, FixRoute leaves the branch untouched and
// returns false.
func (p *Placer) FixRoute(finish bool) (bool, error) {
	if p.state != StateRoute {
		return false, ErrNotRouting
	}
	if p.head.IsEmpty() || p.head.Len() < 2 {
		return false, ErrNothingToFix
	}
	if !p.opts.CanViolateDRC && p.violationReason(p.head) != "" {
		return false, nil
	}

	var fixed fixedStage
	fixed.pStart = p.pStart
	fixed.tailBefore = p.tail

	for _, s := range p.head.Segments() {
		if s.IsDegenerate() {
			continue
		}
		seg := &item.Segment{
			LinkedBase: item.NewLinkedBase(item.SingleLayer(p.opts.Layer), p.opts.Net),
			Shape:      s,
			Width:      p.opts.Sizes.TrackWidth,
		}
		if _, err := p.branch.Add(seg, true); err != nil {
			return false, err
		}
		fixed.items = append(fixed.items, seg)
	}

	endPoint := p.head.Points[len(p.head.Points)-1]
	if p.viaRequested {
		via := &item.Via{
			LinkedBase: item.NewLinkedBase(item.LayerRange{Start: p.opts.Sizes.LayerPairTop, End: p.opts.Sizes.LayerPairBot}, p.opts.Net),
			Pos:        endPoint,
			Mode:       item.DiameterNormal,
			Normal:     p.opts.Sizes.ViaDiameter,
			Drill:      p.opts.Sizes.ViaDrill,
			Type:       p.opts.Sizes.ViaType,
		}
		if _, err := p.branch.Add(via, true); err != nil {
			return false, err
		}
		fixed.viaItem = via
		p.viaRequested = false
	}

	p.fixed = append(p.fixed, fixed)
	p.tail = mergeChains(p.tail, p.head)
	p.pStart = endPoint
	p.head = geom.Chain{}
	p.tracer = posture.NewTracer(defaultLockMargin, defaultUnlockMargin)

	if finish {
		p.state = StateFinish
		p.opts.Diag.PlacerTransition(StateRoute.String(), StateFinish.String())
	}
	return true, nil
}

// UnfixRoute pops the most recently fixed stage, removing its items from
// the current branch and restoring the placer's cursor/tail to the prior
// stage.
func (p *Placer) UnfixRoute() error {
	if len(p.fixed) == 0 {
		return ErrNothingToUnfix
	}
	last := p.fixed[len(p.fixed)-1]
	p.fixed = p.fixed[:len(p.fixed)-1]

	for _, it := range last.items {
		if err := p.branch.Remove(it); err != nil {
			return err
		}
	}
	if last.viaItem != nil {
		if err := p.branch.Remove(last.viaItem); err != nil {
			return err
		}
	}

	p.pStart = last.pStart
	p.tail = last.tailBefore
	p.head = geom.Chain{}
	if p.state == StateFinish {
		p.state = StateRoute
	}
	return nil
}

// Abort kills the placer's branch tree (every speculative shove attempt
// plus the interaction branch itself) and returns to StateStart, per §5's
// cancellation semantics.
func (p *Placer) Abort() {
	if p.interactionRoot != nil {
		p.interactionRoot.Kill()
	}
	p.branch = p.root
	p.interactionRoot = nil
	p.state = StateStart
	p.tail = geom.Chain{}
	p.head = geom.Chain{}
	p.fixed = nil
}
