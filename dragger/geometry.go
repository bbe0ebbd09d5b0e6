package dragger

import (
	"math"

	"github.com/solderpath/pns/geom"
)

// snapToOctant rounds the direction from anchor to cursor to the nearest
// multiple of 45 degrees, preserving the cursor's distance from anchor, so
// a 45-constrained corner drag always produces an axis- or diagonal-
// aligned leg back to its fixed neighbour.
func snapToOctant(anchor, cursor geom.Point) geom.Point {
	dx, dy := float64(cursor.X-anchor.X), float64(cursor.Y-anchor.Y)
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return anchor
	}
	angle := math.Atan2(dy, dx)
	const step = math.Pi / 4
	snapped := math.Round(angle/step) * step
	return geom.Pt(anchor.X+int64(math.Round(dist*math.Cos(snapped))), anchor.Y+int64(math.Round(dist*math.Sin(snapped))))
}

// nearestVertexIndex returns the index of chain's vertex closest to p.
func nearestVertexIndex(chain geom.Chain, p geom.Point) int {
	best, bestDist := -1, -1.0
	for i, v := range chain.Points {
		d := v.Distance(p)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// dragCorner moves the vertex at idx to cursor (snapped per constraint
// relative to the previous fixed vertex), leaving every other vertex
// untouched.
func dragCorner(chain geom.Chain, idx int, cursor geom.Point, angle AngleConstraint) geom.Chain {
	out := append([]geom.Point{}, chain.Points...)
	if idx < 0 || idx >= len(out) {
		return chain
	}
	target := cursor
	if angle == Angle45 {
		anchor := out[idx]
		if idx > 0 {
			anchor = out[idx-1]
		} else if idx+1 < len(out) {
			anchor = out[idx+1]
		}
		target = snapToOctant(anchor, cursor)
	}
	out[idx] = target
	return geom.NewChain(out...)
}

// dragSegment translates the endpoints of the edge (idx, idx+1) by the
// perpendicular offset from cursor to that edge's infinite line, carrying
// the whole segment sideways while its neighbours stay put.
func dragSegment(chain geom.Chain, idx int, cursor geom.Point) geom.Chain {
	out := append([]geom.Point{}, chain.Points...)
	if idx < 0 || idx+1 >= len(out) {
		return chain
	}
	a, b := out[idx], out[idx+1]
	edge := geom.Seg(a, b)
	if edge.IsDegenerate() {
		return chain
	}
	abx, aby := float64(b.X-a.X), float64(b.Y-a.Y)
	t := (float64(cursor.X-a.X)*abx + float64(cursor.Y-a.Y)*aby) / (abx*abx + aby*aby)
	near := geom.Pt(a.X+int64(math.Round(t*abx)), a.Y+int64(math.Round(t*aby)))
	offset := geom.VectorTo(near, cursor)
	out[idx] = offset.Apply(a)
	out[idx+1] = offset.Apply(b)
	return geom.NewChain(out...)
}
