package walkaround

import (
	"sort"

	"github.com/solderpath/pns/geom"
)

// boundaryHit is an intersection point between a candidate segment and a
// hull edge, plus its parametric position t along the candidate segment
// (used to order multiple crossings) and its arc-length position along the
// hull perimeter (used to walk the boundary between two hits).
type boundaryHit struct {
	point  geom.Point
	segT   float64
	arcPos float64
}

// perimeter precomputes each hull edge's starting arc-length offset and the
// chain's total perimeter, so locating a point's arc-length position is a
// single pass over the edges.
type perimeter struct {
	segs       []geom.Segment
	vertexArcs []float64
	total      float64
}

func newPerimeter(h geom.Chain) perimeter {
	segs := h.Segments()
	arcs := make([]float64, len(segs))
	var cum float64
	for i, s := range segs {
		arcs[i] = cum
		cum += s.Length()
	}
	return perimeter{segs: segs, vertexArcs: arcs, total: cum}
}

// locate returns p's arc-length position along the hull boundary, snapping
// to the nearest point on the nearest edge.
func (pm perimeter) locate(p geom.Point) (arcPos float64, snapped geom.Point) {
	best := -1.0
	for i, s := range pm.segs {
		near, t := s.NearestPoint(p)
		d := near.Distance(p)
		if best < 0 || d < best {
			best = d
			arcPos = pm.vertexArcs[i] + t*s.Length()
			snapped = near
		}
	}
	return arcPos, snapped
}

// intersectChainWithSegment returns every point where s crosses h's edges,
// ordered by s's own parametric position (so the first entry is where the
// candidate path first enters the obstacle).
func intersectChainWithSegment(h geom.Chain, s geom.Segment) []boundaryHit {
	pm := newPerimeter(h)
	var hits []boundaryHit
	for _, edge := range pm.segs {
		p, ok := s.Intersect(edge)
		if !ok {
			continue
		}
		_, t := s.NearestPoint(p)
		arcPos, snapped := pm.locate(p)
		hits = append(hits, boundaryHit{point: snapped, segT: t, arcPos: arcPos})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].segT < hits[j].segT })
	return dedupeHits(hits)
}

func dedupeHits(hits []boundaryHit) []boundaryHit {
	if len(hits) < 2 {
		return hits
	}
	out := hits[:1]
	for _, h := range hits[1:] {
		if h.point.Distance(out[len(out)-1].point) > 1 {
			out = append(out, h)
		}
	}
	return out
}

// walkBoundary returns the hull vertices strictly between entry and exit's
// arc-length positions, walking forward (increasing arc position, wrapping
// at the perimeter) from entry to exit.
func walkBoundary(h geom.Chain, pm perimeter, fromArc, toArc float64) []geom.Point {
	span := toArc - fromArc
	if span < 0 {
		span += pm.total
	}
	type rel struct {
		d float64
		p geom.Point
	}
	var rels []rel
	for i, arc := range pm.vertexArcs {
		d := arc - fromArc
		if d < 0 {
			d += pm.total
		}
		if d > 1e-6 && d < span {
			rels = append(rels, rel{d: d, p: h.Points[i]})
		}
	}
	sort.Slice(rels, func(i, j int) bool { return rels[i].d < rels[j].d })
	out := make([]geom.Point, len(rels))
	for i, r := range rels {
		out[i] = r.p
	}
	return out
}

// walkLength sums the euclidean length of entry -> vertices -> exit.
func walkLength(entry geom.Point, mid []geom.Point, exit geom.Point) float64 {
	var total float64
	prev := entry
	for _, p := range mid {
		total += prev.Distance(p)
		prev = p
	}
	total += prev.Distance(exit)
	return total
}

// AroundHull returns the shorter of the two candidate detours around h
// between entry and exit, as a vertex list starting at entry and ending at
// exit (exclusive of h's own closing edge).
func AroundHull(h geom.Chain, entry, exit geom.Point) []geom.Point {
	pm := newPerimeter(h)
	entryArc, entrySnap := pm.locate(entry)
	exitArc, exitSnap := pm.locate(exit)

	forward := walkBoundary(h, pm, entryArc, exitArc)
	backward := walkBoundary(h, pm, exitArc, entryArc)
	// backward's vertices walk from exit to entry; reverse to read
	// entry-to-exit along the other direction.
	reversedBackward := make([]geom.Point, len(backward))
	for i, p := range backward {
		reversedBackward[len(backward)-1-i] = p
	}

	fwdLen := walkLength(entrySnap, forward, exitSnap)
	bwdLen := walkLength(entrySnap, reversedBackward, exitSnap)

	out := make([]geom.Point, 0, len(forward)+2)
	out = append(out, entrySnap)
	if fwdLen <= bwdLen {
		out = append(out, forward...)
	} else {
		out = append(out, reversedBackward...)
	}
	out = append(out, exitSnap)
	return out
}
