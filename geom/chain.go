package geom

// Chain is an ordered sequence of integer vertices, optionally closed,
// where any subrange may originate from an arc. ArcIndex[i] is -1 for a
// straight vertex, or the index into Arcs for a vertex that lies on an arc
// (so arcs round-trip through Split/Join/ClearArcs without losing their
// curvature).
type Chain struct {
	Points   []Point
	ArcIndex []int // len == len(Points); -1 = not on an arc
	Arcs     []Arc
	Closed   bool
}

// NewChain builds an open, arc-free chain from the given points.
func NewChain(pts ...Point) Chain {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = -1
	}
	return Chain{Points: append([]Point(nil), pts...), ArcIndex: idx}
}

// IsEmpty reports whether the chain has no vertices.
func (c Chain) IsEmpty() bool { return len(c.Points) == 0 }

// Len returns the number of vertices.
func (c Chain) Len() int { return len(c.Points) }

// Segments returns the chain's edges as Segment values, wrapping around if
// Closed.
func (c Chain) Segments() []Segment {
	n := len(c.Points)
	if n < 2 {
		return nil
	}
	limit := n - 1
	if c.Closed {
		limit = n
	}
	out := make([]Segment, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, Segment{A: c.Points[i], B: c.Points[(i+1)%n]})
	}
	return out
}

// Length returns the total euclidean length of the chain's segments.
func (c Chain) Length() float64 {
	var total float64
	for _, s := range c.Segments() {
		total += s.Length()
	}
	return total
}

// Reversed returns the chain traversed back to front; ArcIndex stays
// aligned with the reversed Points, and embedded arcs are flipped so a
// re-walk produces the same geometry.
func (c Chain) Reversed() Chain {
	n := len(c.Points)
	out := Chain{
		Points:   make([]Point, n),
		ArcIndex: make([]int, n),
		Arcs:     append([]Arc(nil), c.Arcs...),
		Closed:   c.Closed,
	}
	for i, arc := range out.Arcs {
		out.Arcs[i] = arc.Reversed()
	}
	for i := 0; i < n; i++ {
		out.Points[i] = c.Points[n-1-i]
		out.ArcIndex[i] = c.ArcIndex[n-1-i]
	}
	return out
}

// Append returns a new chain with q's vertices appended after c's. If the
// chains share an endpoint it is not deduplicated; callers needing a clean
// join should drop one endpoint themselves (this mirrors AssembleLine,
// which concatenates link chains vertex-for-vertex).
func (c Chain) Append(q Chain) Chain {
	out := Chain{
		Points:   append(append([]Point(nil), c.Points...), q.Points...),
		ArcIndex: make([]int, 0, len(c.Points)+len(q.Points)),
		Arcs:     append([]Arc(nil), c.Arcs...),
	}
	out.ArcIndex = append(out.ArcIndex, c.ArcIndex...)
	offset := len(out.Arcs)
	for _, qi := range q.ArcIndex {
		if qi < 0 {
			out.ArcIndex = append(out.ArcIndex, -1)
		} else {
			out.ArcIndex = append(out.ArcIndex, qi+offset)
		}
	}
	out.Arcs = append(out.Arcs, q.Arcs...)
	return out
}

// Split cuts the chain at the vertex closest to p on its edge list,
// inserting p as a vertex if it falls strictly inside a segment, and
// returns the two resulting slices. Splitting mid-arc preserves the arc's
// ArcIndex on both halves so ClearArcs/Join can reconstruct it.
func (c Chain) Split(p Point) (Chain, Chain, error) {
	if c.IsEmpty() {
		return Chain{}, Chain{}, ErrEmptyChain
	}
	segs := c.Segments()
	best := -1
	bestDist := -1.0
	var bestPoint Point
	for i, s := range segs {
		near, _ := s.NearestPoint(p)
		d := near.Distance(p)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
			bestPoint = near
		}
	}
	if best == -1 || bestDist > 1 {
		return Chain{}, Chain{}, ErrNoSplitPoint
	}
	// Exact vertex hit: split between vertices without inserting.
	if bestPoint.Equal(c.Points[best]) {
		left := Chain{Points: append([]Point(nil), c.Points[:best+1]...), ArcIndex: append([]int(nil), c.ArcIndex[:best+1]...), Arcs: c.Arcs}
		right := Chain{Points: append([]Point(nil), c.Points[best:]...), ArcIndex: append([]int(nil), c.ArcIndex[best:]...), Arcs: c.Arcs}
		return left, right, nil
	}
	if bestPoint.Equal(c.Points[(best+1)%len(c.Points)]) {
		end := best + 1
		left := Chain{Points: append([]Point(nil), c.Points[:end+1]...), ArcIndex: append([]int(nil), c.ArcIndex[:end+1]...), Arcs: c.Arcs}
		right := Chain{Points: append([]Point(nil), c.Points[end:]...), ArcIndex: append([]int(nil), c.ArcIndex[end:]...), Arcs: c.Arcs}
		return left, right, nil
	}
	arcIdx := c.ArcIndex[best]
	leftPts := append(append([]Point(nil), c.Points[:best+1]...), bestPoint)
	leftArc := append(append([]int(nil), c.ArcIndex[:best+1]...), arcIdx)
	rightPts := append([]Point{bestPoint}, c.Points[best+1:]...)
	rightArc := append([]int{arcIdx}, c.ArcIndex[best+1:]...)
	return Chain{Points: leftPts, ArcIndex: leftArc, Arcs: c.Arcs},
		Chain{Points: rightPts, ArcIndex: rightArc, Arcs: c.Arcs}, nil
}

// ClearArcs returns a copy of the chain with every ArcIndex entry reset to
// -1, i.e. "forget" which vertices came from arcs while keeping their
// sampled positions; for closed chains this preserves enclosed area and the
// vertex sequence, per the round-trip law.
func (c Chain) ClearArcs() Chain {
	out := Chain{Points: append([]Point(nil), c.Points...), Closed: c.Closed}
	out.ArcIndex = make([]int, len(out.Points))
	for i := range out.ArcIndex {
		out.ArcIndex[i] = -1
	}
	return out
}

// SignedArea returns the shoelace signed area of a closed chain (positive
// for counter-clockwise winding). Zero for an open chain shorter than 3
// points.
func (c Chain) SignedArea() float64 {
	n := len(c.Points)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += float64(c.Points[i].X)*float64(c.Points[j].Y) - float64(c.Points[j].X)*float64(c.Points[i].Y)
	}
	return area / 2
}
