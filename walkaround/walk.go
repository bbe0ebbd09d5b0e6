package walkaround

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/hull"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/logger"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/rule"
)

// maxHops bounds the number of obstacles Attempt will walk around before
// giving up, per §4.3's iteration budget.
const maxHops = 1000

// Options carries the identity (layer/net/width) the candidate path would
// have if committed, and the collaborators needed to evaluate collisions
// and build hulls along the way.
type Options struct {
	Layer    int
	Net      item.NetHandle
	Width    int64
	Resolver rule.Resolver
	Diag     logger.Diag
}

func (o Options) transientSegment(s geom.Segment) *item.Segment {
	seg := &item.Segment{
		LinkedBase: item.NewLinkedBase(item.SingleLayer(o.Layer), o.Net),
		Shape:      s,
		Width:      o.Width,
	}
	seg.SetVirtual(true)
	return seg
}

// Attempt straightens path against n's obstacles: it finds the first edge
// that collides with something, walks that obstacle's hull in the shorter
// direction, splices the detour in, and repeats against the updated path
// until nothing collides or the iteration budget is exhausted.
func Attempt(n *node.Node, path geom.Chain, opts Options) (geom.Chain, error) {
	current := path
	for hop := 0; hop < maxHops; hop++ {
		idx, obstacle, found := firstCollidingEdge(n, current, opts)
		if !found {
			return current, nil
		}

		edge := current.Segments()[idx]
		clearance := opts.Resolver.Clearance(opts.transientSegment(edge), obstacle, false)
		h, err := hull.For(obstacle, clearance, opts.Width, opts.Layer)
		if err != nil {
			return geom.Chain{}, err
		}
		if hull.Classify(h, current.Points[0]) == hull.Inside || hull.Classify(h, current.Points[len(current.Points)-1]) == hull.Inside {
			return geom.Chain{}, ErrEndpointInsideObstacle
		}

		hits := intersectChainWithSegment(h, edge)
		if len(hits) < 2 {
			return geom.Chain{}, ErrNoIntersection
		}
		entry, exit := hits[0].point, hits[len(hits)-1].point
		detour := AroundHull(h, entry, exit)

		current = splice(current, idx, detour)
		opts.Diag.WalkaroundStep("re-routed around obstacle", hop)
	}
	opts.Diag.WalkaroundFailure("iteration budget exceeded", maxHops)
	return geom.Chain{}, ErrIterationLimit
}

// firstCollidingEdge returns the index of the first edge in path that
// collides with something on n, and the colliding item.
func firstCollidingEdge(n *node.Node, path geom.Chain, opts Options) (int, item.Linked, bool) {
	layer := opts.Layer
	for i, edge := range path.Segments() {
		candidate := opts.transientSegment(edge)
		hits := n.QueryColliding(candidate, node.CollisionOptions{
			DifferentNetsOnly: true,
			Layer:             &layer,
			LimitCount:        1,
		})
		if len(hits) > 0 {
			return i, hits[0].Item, true
		}
	}
	return 0, nil, false
}

// splice replaces the single edge at path.Points[idx]-Points[idx+1] with
// Points[idx], detour..., Points[idx+1].
func splice(path geom.Chain, idx int, detour []geom.Point) geom.Chain {
	out := make([]geom.Point, 0, len(path.Points)+len(detour))
	out = append(out, path.Points[:idx+1]...)
	out = append(out, detour...)
	out = append(out, path.Points[idx+1:]...)
	return geom.NewChain(out...)
}
