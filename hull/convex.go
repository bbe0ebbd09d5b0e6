package hull

import (
	"sort"

	"github.com/solderpath/pns/geom"
)

// ConvexHull computes the convex hull of a point set using the monotone
// chain algorithm, returned as a closed, counter-clockwise geom.Chain.
// Used to merge the hulls of multiple primitives composing one compound
// item (a pad with a circular anti-pad, a solid with a custom shape) --
// the "polygon union" of §4.2 simplifies to a convex merge here because
// every primitive hull this package builds is itself already convex.
func ConvexHull(pts []geom.Point) geom.Chain {
	uniq := dedupe(pts)
	if len(uniq) < 3 {
		idx := make([]int, len(uniq))
		for i := range idx {
			idx[i] = -1
		}
		return geom.Chain{Points: uniq, ArcIndex: idx, Closed: true}
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].X != uniq[j].X {
			return uniq[i].X < uniq[j].X
		}
		return uniq[i].Y < uniq[j].Y
	})

	build := func(points []geom.Point) []geom.Point {
		var hullSide []geom.Point
		for _, p := range points {
			for len(hullSide) >= 2 && geom.Orient(hullSide[len(hullSide)-2], hullSide[len(hullSide)-1], p) != geom.CounterClockwise {
				hullSide = hullSide[:len(hullSide)-1]
			}
			hullSide = append(hullSide, p)
		}
		return hullSide
	}
	lower := build(uniq)
	reversed := make([]geom.Point, len(uniq))
	for i, p := range uniq {
		reversed[len(uniq)-1-i] = p
	}
	upper := build(reversed)

	full := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	idx := make([]int, len(full))
	for i := range idx {
		idx[i] = -1
	}
	return geom.Chain{Points: full, ArcIndex: idx, Closed: true}
}

func dedupe(pts []geom.Point) []geom.Point {
	seen := make(map[geom.Point]struct{}, len(pts))
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
