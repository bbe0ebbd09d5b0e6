package placer

import "github.com/solderpath/pns/geom"

// optimizeTransition collapses collinear interior vertices from chain,
// per §4.5's "optimize-transition" cleanup step.
func optimizeTransition(chain geom.Chain) geom.Chain {
	if len(chain.Points) < 3 {
		return chain
	}
	out := []geom.Point{chain.Points[0]}
	for i := 1; i < len(chain.Points)-1; i++ {
		prev, cur, next := chain.Points[i-1], chain.Points[i], chain.Points[i+1]
		if geom.Orient(prev, cur, next) == geom.Collinear {
			continue
		}
		out = append(out, cur)
	}
	out = append(out, chain.Points[len(chain.Points)-1])
	return geom.NewChain(out...)
}

// reduceTail returns the straight two-point chain from tail's first vertex
// to dst when that shortcut is collision-free, or tail unchanged otherwise.
// Callers pass a collisionFree predicate so reduceTail stays independent of
// the node package's exact query shape.
func reduceTail(tail geom.Chain, dst geom.Point, collisionFree func(geom.Segment) bool) geom.Chain {
	if tail.IsEmpty() {
		return tail
	}
	straight := geom.Seg(tail.Points[0], dst)
	if collisionFree(straight) {
		return geom.NewChain(tail.Points[0], dst)
	}
	return tail
}

// mergeChains appends head onto tail, dropping head's first vertex when it
// coincides with tail's last (the common case: head always starts where
// tail left off).
func mergeChains(tail, head geom.Chain) geom.Chain {
	if tail.IsEmpty() {
		return head
	}
	if head.IsEmpty() {
		return tail
	}
	if tail.Points[len(tail.Points)-1].Equal(head.Points[0]) {
		return geom.NewChain(append(append([]geom.Point{}, tail.Points...), head.Points[1:]...)...)
	}
	return tail.Append(head)
}

// nearestChainPoint finds the point on chain nearest to p, returning the
// index of the edge it falls on and the distance.
func nearestChainPoint(chain geom.Chain, p geom.Point) (edge int, nearest geom.Point, dist float64) {
	best := -1
	bestDist := -1.0
	var bestPt geom.Point
	for i, s := range chain.Segments() {
		near, d := s.NearestPoint(p)
		if best == -1 || d < bestDist {
			best, bestDist, bestPt = i, d, near
		}
	}
	return best, bestPt, bestDist
}

// truncateAt cuts chain at the point nearest p, keeping the prefix from
// chain's start up to (and including) that point -- used for both
// self-intersection truncation and pull-back shortening.
func truncateAt(chain geom.Chain, p geom.Point) geom.Chain {
	edge, nearest, _ := nearestChainPoint(chain, p)
	if edge < 0 {
		return chain
	}
	pts := append([]geom.Point{}, chain.Points[:edge+1]...)
	if !nearest.Equal(pts[len(pts)-1]) {
		pts = append(pts, nearest)
	}
	return geom.NewChain(pts...)
}
