package diffpair

import (
	"math"

	"github.com/solderpath/pns/geom"
)

// offsetChain translates every vertex of chain by dist along the
// perpendicular of its overall start-to-end direction, producing one side
// of a coupled pair's parallel run from its shared centre-line. A single
// uniform offset (rather than per-edge mitred offsets) is the same
// simplification the two-segment 45-degree candidate chain itself already
// makes: both legs of a spine segment share one direction closely enough
// that the two sides stay within the configured gap tolerance.
func offsetChain(chain geom.Chain, dist int64) geom.Chain {
	if chain.Len() < 2 || dist == 0 {
		return chain
	}
	pts := chain.Points
	dir := geom.VectorTo(pts[0], pts[len(pts)-1])
	ux, uy := dir.Perp().Normalized()
	offset := geom.Vec(int64(math.Round(ux*float64(dist))), int64(math.Round(uy*float64(dist))))
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = offset.Apply(p)
	}
	return geom.NewChain(out...)
}

// optimizeTransition collapses collinear interior vertices from chain, the
// same cleanup placer.optimizeTransition applies to a single line's head.
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

// mergeChains appends head onto tail, the same join placer.mergeChains
// performs for a single line.
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

// nearestChainPoint finds the point on chain nearest to p.
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
// chain's start up to (and including) that point.
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
