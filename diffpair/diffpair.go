package diffpair

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

// fixedStage is one undo-stack entry for UnfixRoute, mirroring
// placer.fixedStage doubled for both nets.
type fixedStage struct {
	itemsP, itemsN  []item.Linked
	spineOrigin     geom.Point
	spineTailBefore geom.Chain
	viaP, viaN      item.Linked
}

// Placer drives a coupled P/N pair through the same START -> ROUTE ->
// FINISH interaction as a single line, keeping both sides offset from one
// shared centre-line and resolving collisions for the pair jointly.
type Placer struct {
	root   *node.Node
	branch *node.Node

	interactionRoot *node.Node
	opts            Options
	tracer          *posture.Tracer

	state State

	spineOrigin geom.Point
	spineTail   geom.Chain
	tailP       geom.Chain
	tailN       geom.Chain
	headP       geom.Chain
	headN       geom.Chain

	viaRequested  bool
	lastMode      Mode
	failureReason string

	fixed []fixedStage
}

// New builds a Placer bound to root.
func New(root *node.Node, opts ...Option) *Placer {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Placer{root: root, branch: root, opts: o, tracer: posture.NewTracer(defaultLockMargin, defaultUnlockMargin), state: StateStart}
}

// State returns the pair's current interaction state.
func (p *Placer) State() State { return p.state }

// Node returns the branch the pair is currently operating on.
func (p *Placer) Node() *node.Node { return p.branch }

// HeadP and HeadN return the volatile per-net candidate chains from the
// last Move.
func (p *Placer) HeadP() geom.Chain { return p.headP }
func (p *Placer) HeadN() geom.Chain { return p.headN }

// TailP and TailN return the already-fixed chains for the current
// interaction.
func (p *Placer) TailP() geom.Chain { return p.tailP }
func (p *Placer) TailN() geom.Chain { return p.tailN }

// LastMode reports which collision-resolution mode actually produced the
// current heads.
func (p *Placer) LastMode() Mode { return p.lastMode }

// FailureReason returns the one-line message describing why every mode
// fell back to ModeMarkObstacles on the last Move, or "" otherwise.
func (p *Placer) FailureReason() string { return p.failureReason }

func (p *Placer) halfSpacing() int64 {
	if d := p.opts.Sizes.DiffPairAnchorDistance(); d > 0 {
		return d / 2
	}
	return 1
}

func (p *Placer) halfTrackWidth() int64 {
	if p.opts.Sizes.DiffPairWidth > 0 {
		return p.opts.Sizes.DiffPairWidth / 2
	}
	return 1
}

// Start begins a new interaction from anchorP/anchorN: it rejects a pair
// whose spacing falls outside the configured +-10% tolerance, rejects
// either anchor sitting on a non-routable obstacle, then opens a fresh
// branch shared by both nets.
func (p *Placer) Start(anchorP, anchorN geom.Point) error {
	if p.state == StateRoute {
		return ErrAlreadyRouting
	}

	if want := p.opts.Sizes.DiffPairAnchorDistance(); want > 0 {
		got := anchorP.Distance(anchorN)
		lo, hi := float64(want)*(1-gapTolerance), float64(want)*(1+gapTolerance)
		if got < lo || got > hi {
			return ErrGapOutOfTolerance
		}
	}

	for _, at := range []geom.Point{anchorP, anchorN} {
		for _, hit := range p.root.HitTest(at, p.opts.Layer) {
			if !hit.Routable() {
				return ErrNonRoutableStartPoint
			}
			if s, ok := hit.(*item.Solid); ok && s.IsKeepout {
				return ErrNonRoutableStartPoint
			}
		}
	}

	p.branch = p.root.Branch()
	p.interactionRoot = p.branch
	p.spineOrigin = geom.Pt((anchorP.X+anchorN.X)/2, (anchorP.Y+anchorN.Y)/2)
	p.spineTail = geom.Chain{}
	p.tailP, p.tailN = geom.Chain{}, geom.Chain{}
	p.headP, p.headN = geom.Chain{}, geom.Chain{}
	p.viaRequested = false
	p.failureReason = ""
	p.tracer = posture.NewTracer(defaultLockMargin, defaultUnlockMargin)
	p.state = StateRoute
	p.opts.Diag.PlacerTransition(StateStart.String(), StateRoute.String())
	return nil
}

// Move recomputes both heads for the new cursor position from one shared
// centre-line, handling self-intersection/pull-back against the spine and
// dispatching to the configured collision-resolution mode (with fallback)
// for the pair jointly.
func (p *Placer) Move(at geom.Point) error {
	if p.state != StateRoute {
		return ErrNotRouting
	}
	p.tracer.Observe(at)

	origin := p.spineOrigin
	if !p.spineTail.IsEmpty() {
		origin = p.spineTail.Points[len(p.spineTail.Points)-1]
	}
	if !p.spineTail.IsEmpty() {
		if _, nearest, dist := nearestChainPoint(p.spineTail, at); dist <= float64(p.halfSpacing()+p.halfTrackWidth()) {
			p.spineTail = truncateAt(p.spineTail, at)
			p.tailP = offsetChain(p.spineTail, p.halfSpacing())
			p.tailN = offsetChain(p.spineTail, -p.halfSpacing())
			origin = nearest
		}
	}

	spine := optimizeTransition(p.tracer.Choose(origin, at))
	candP := offsetChain(spine, p.halfSpacing())
	candN := offsetChain(spine, -p.halfSpacing())

	headP, headN, branch, mode, reason := p.resolveHeads(candP, candN)
	p.headP, p.headN = headP, headN
	p.branch = branch
	p.lastMode = mode
	p.failureReason = reason
	return nil
}

// resolveHeads tries shove, then walkaround, then mark-obstacles, in that
// order starting from the configured mode, treating the two candidates as
// one joint move: a mode only counts as succeeding once BOTH candidates
// clear it.
func (p *Placer) resolveHeads(candP, candN geom.Chain) (geom.Chain, geom.Chain, *node.Node, Mode, string) {
	switch p.opts.Mode {
	case ModeShove:
		if attempt, ok := p.attemptShove(candP, candN); ok {
			return candP, candN, attempt, ModeShove, ""
		}
		fallthrough
	case ModeWalkaround:
		if detourP, detourN, err := p.attemptWalkaround(candP, candN); err == nil {
			return detourP, detourN, p.branch, ModeWalkaround, ""
		}
		fallthrough
	case ModeMarkObstacles:
		return candP, candN, p.branch, ModeMarkObstacles, p.violationReason(candP, candN)
	}
	return candP, candN, p.branch, ModeMarkObstacles, ""
}

// attemptShove runs the shove engine against one fresh branch for every
// edge of both candidates, so an obstacle shoved out of P's way is visible
// to N's attempt on the same branch. The attempt branch is killed on any
// failure.
func (p *Placer) attemptShove(candP, candN geom.Chain) (*node.Node, bool) {
	attempt := p.branch.Branch()
	for _, cand := range []struct {
		chain geom.Chain
		net   item.NetHandle
	}{{candP, p.opts.NetP}, {candN, p.opts.NetN}} {
		for _, s := range cand.chain.Segments() {
			if s.IsDegenerate() {
				continue
			}
			mover := &item.Segment{
				LinkedBase: item.NewLinkedBase(item.SingleLayer(p.opts.Layer), cand.net),
				Shape:      s,
				Width:      p.opts.Sizes.DiffPairWidth,
			}
			mover.SetVirtual(true)
			result, err := shove.Propagate(attempt, mover, shove.WithDiag(p.opts.Diag))
			if err != nil || result.State != shove.StateStable {
				attempt.Kill()
				return nil, false
			}
		}
	}
	return attempt, true
}

// attemptWalkaround detours both candidates around whatever they collide
// with on the current branch, failing the whole attempt if either side
// cannot be routed around.
func (p *Placer) attemptWalkaround(candP, candN geom.Chain) (geom.Chain, geom.Chain, error) {
	detourP, err := walkaround.Attempt(p.branch, candP, walkaround.Options{
		Layer: p.opts.Layer, Net: p.opts.NetP, Width: p.opts.Sizes.DiffPairWidth,
		Resolver: p.branch.Resolver(), Diag: p.opts.Diag,
	})
	if err != nil {
		return candP, candN, err
	}
	detourN, err := walkaround.Attempt(p.branch, candN, walkaround.Options{
		Layer: p.opts.Layer, Net: p.opts.NetN, Width: p.opts.Sizes.DiffPairWidth,
		Resolver: p.branch.Resolver(), Diag: p.opts.Diag,
	})
	if err != nil {
		return candP, candN, err
	}
	return detourP, detourN, nil
}

// violationReason reports why the pair is flagged under mark-obstacles, or
// "" if both candidates are collision-free.
func (p *Placer) violationReason(candP, candN geom.Chain) string {
	for _, cand := range []struct {
		chain geom.Chain
		net   item.NetHandle
	}{{candP, p.opts.NetP}, {candN, p.opts.NetN}} {
		for _, s := range cand.chain.Segments() {
			probe := &item.Segment{
				LinkedBase: item.NewLinkedBase(item.SingleLayer(p.opts.Layer), cand.net),
				Shape:      s,
				Width:      p.opts.Sizes.DiffPairWidth,
			}
			layer := p.opts.Layer
			if hits := p.branch.QueryColliding(probe, node.CollisionOptions{DifferentNetsOnly: true, Layer: &layer, LimitCount: 1}); len(hits) > 0 {
				return ErrAllModesFailed.Error()
			}
		}
	}
	return ""
}

// ToggleVia flips whether FixRoute should terminate the current leg with a
// via pair instead of bare endpoints.
func (p *Placer) ToggleVia() { p.viaRequested = !p.viaRequested }

// FixRoute commits both current heads onto their tails as real linked
// items, optionally appending one via at the end of each net's line (the
// configured diff-pair via gap is not applied), and either rebases the spine origin for a chained placement or
// ends the interaction when finish is true.
func (p *Placer) FixRoute(finish bool) (bool, error) {
	if p.state != StateRoute {
		return false, ErrNotRouting
	}
	if p.headP.IsEmpty() || p.headP.Len() < 2 || p.headN.IsEmpty() || p.headN.Len() < 2 {
		return false, ErrNothingToFix
	}
	if !p.opts.CanViolateDRC && p.violationReason(p.headP, p.headN) != "" {
		return false, nil
	}

	var fixed fixedStage
	fixed.spineOrigin = p.spineOrigin
	fixed.spineTailBefore = p.spineTail

	for _, cand := range []struct {
		chain geom.Chain
		net   item.NetHandle
		into  *[]item.Linked
	}{{p.headP, p.opts.NetP, &fixed.itemsP}, {p.headN, p.opts.NetN, &fixed.itemsN}} {
		for _, s := range cand.chain.Segments() {
			if s.IsDegenerate() {
				continue
			}
			seg := &item.Segment{
				LinkedBase: item.NewLinkedBase(item.SingleLayer(p.opts.Layer), cand.net),
				Shape:      s,
				Width:      p.opts.Sizes.DiffPairWidth,
			}
			if _, err := p.branch.Add(seg, true); err != nil {
				return false, err
			}
			*cand.into = append(*cand.into, seg)
		}
	}

	endP := p.headP.Points[len(p.headP.Points)-1]
	endN := p.headN.Points[len(p.headN.Points)-1]
	if p.viaRequested {
		// via barrels land at their own line end, already halfSpacing()
		// off the centre-line; DiffPairViaGap governs pad layout, not here.
		viaP := &item.Via{
			LinkedBase: item.NewLinkedBase(item.LayerRange{Start: p.opts.Sizes.LayerPairTop, End: p.opts.Sizes.LayerPairBot}, p.opts.NetP),
			Pos:        endP, Mode: item.DiameterNormal, Normal: p.opts.Sizes.ViaDiameter, Drill: p.opts.Sizes.ViaDrill, Type: p.opts.Sizes.ViaType,
		}
		viaN := &item.Via{
			LinkedBase: item.NewLinkedBase(item.LayerRange{Start: p.opts.Sizes.LayerPairTop, End: p.opts.Sizes.LayerPairBot}, p.opts.NetN),
			Pos:        endN, Mode: item.DiameterNormal, Normal: p.opts.Sizes.ViaDiameter, Drill: p.opts.Sizes.ViaDrill, Type: p.opts.Sizes.ViaType,
		}
		if _, err := p.branch.Add(viaP, true); err != nil {
			return false, err
		}
		if _, err := p.branch.Add(viaN, true); err != nil {
			return false, err
		}
		fixed.viaP, fixed.viaN = viaP, viaN
		p.viaRequested = false
	}

	p.fixed = append(p.fixed, fixed)
	p.tailP = mergeChains(p.tailP, p.headP)
	p.tailN = mergeChains(p.tailN, p.headN)
	midEnd := geom.Pt((endP.X+endN.X)/2, (endP.Y+endN.Y)/2)
	p.spineTail = mergeChains(p.spineTail, geom.NewChain(p.spineOrigin, midEnd))
	p.spineOrigin = midEnd
	p.headP, p.headN = geom.Chain{}, geom.Chain{}
	p.tracer = posture.NewTracer(defaultLockMargin, defaultUnlockMargin)

	if finish {
		p.state = StateFinish
		p.opts.Diag.PlacerTransition(StateRoute.String(), StateFinish.String())
	}
	return true, nil
}

// UnfixRoute pops the most recently fixed stage for both nets.
func (p *Placer) UnfixRoute() error {
	if len(p.fixed) == 0 {
		return ErrNothingToUnfix
	}
	last := p.fixed[len(p.fixed)-1]
	p.fixed = p.fixed[:len(p.fixed)-1]

	for _, items := range [][]item.Linked{last.itemsP, last.itemsN} {
		for _, it := range items {
			if err := p.branch.Remove(it); err != nil {
				return err
			}
		}
	}
	if last.viaP != nil {
		if err := p.branch.Remove(last.viaP); err != nil {
			return err
		}
	}
	if last.viaN != nil {
		if err := p.branch.Remove(last.viaN); err != nil {
			return err
		}
	}

	p.spineOrigin = last.spineOrigin
	p.spineTail = last.spineTailBefore
	p.tailP = offsetChain(p.spineTail, p.halfSpacing())
	p.tailN = offsetChain(p.spineTail, -p.halfSpacing())
	p.headP, p.headN = geom.Chain{}, geom.Chain{}
	if p.state == StateFinish {
		p.state = StateRoute
	}
	return nil
}

// Abort kills the pair's entire branch tree and returns to StateStart.
func (p *Placer) Abort() {
	if p.interactionRoot != nil {
		p.interactionRoot.Kill()
	}
	p.branch = p.root
	p.interactionRoot = nil
	p.state = StateStart
	p.tailP, p.tailN = geom.Chain{}, geom.Chain{}
	p.headP, p.headN = geom.Chain{}, geom.Chain{}
	p.fixed = nil
}
