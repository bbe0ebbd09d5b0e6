package hull

import "github.com/solderpath/pns/geom"

// Classification is a point's position relative to a hull.
type Classification int

const (
	Outside Classification = iota
	OnEdge
	Inside
)

// Classify locates p relative to the closed convex (or near-convex) chain
// h using a ray-cast point-in-polygon test with an on-edge tolerance.
func Classify(h geom.Chain, p Point) Classification {
	segs := h.Segments()
	const edgeEps = 1.0
	for _, s := range segs {
		if s.DistanceTo(p) <= edgeEps {
			return OnEdge
		}
	}
	if len(segs) == 0 {
		return Outside
	}
	inside := false
	n := len(h.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := h.Points[i], h.Points[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xint := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < xint {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// Point is a thin alias to keep call sites terse without importing geom
// twice in the walkaround package.
type Point = geom.Point
