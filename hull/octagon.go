package hull

import (
	"math"

	"github.com/solderpath/pns/geom"
)

// sqrtHalfComplement is (1 - 1/sqrt(2)), the fraction of the inflation
// distance chamfered off each corner so a line walking around the hull at
// the requested clearance never cuts a true 45-degree corner short.
const sqrtHalfComplement = 1 - 1/math.Sqrt2

// Octagon builds an octagonal hull (axis-aligned rectangle with 45-degree
// chamfers) around rect, inflated by d = clearance + width/2. A
// zero-size rect (a point) still yields a valid octagon, satisfying the
// "hull construction yields an octagonal box around the point" boundary
// case.
func Octagon(rect geom.Rect, d int64) geom.Chain {
	if d < 1 {
		d = 1
	}
	box := rect.Inflate(d)
	chamfer := int64(math.Round(float64(d) * sqrtHalfComplement * 2))
	if maxChamfer := box.Width(); chamfer > maxChamfer {
		chamfer = maxChamfer
	}
	if maxChamfer := box.Height(); chamfer > maxChamfer {
		chamfer = maxChamfer
	}
	if chamfer < 0 {
		chamfer = 0
	}

	minX, minY, maxX, maxY := box.Min.X, box.Min.Y, box.Max.X, box.Max.Y
	pts := []geom.Point{
		{X: minX + chamfer/2, Y: minY},
		{X: maxX - chamfer/2, Y: minY},
		{X: maxX, Y: minY + chamfer/2},
		{X: maxX, Y: maxY - chamfer/2},
		{X: maxX - chamfer/2, Y: maxY},
		{X: minX + chamfer/2, Y: maxY},
		{X: minX, Y: maxY - chamfer/2},
		{X: minX, Y: minY + chamfer/2},
	}
	return geom.Chain{Points: pts, ArcIndex: []int{-1, -1, -1, -1, -1, -1, -1, -1}, Closed: true}
}

// CircleHull approximates a circle's hull as a regular polygon inflated by
// d, sampled finely enough that every vertex sits within d-accuracy of the
// ideal circle (reusing geom.Arc's sampler for a full 2*pi sweep).
func CircleHull(c geom.Circle, d int64, accuracy int64) geom.Chain {
	radius := c.Radius + d
	if radius < 1 {
		radius = 1
	}
	full := geom.NewArcSCA(geom.Pt(c.Center.X+radius, c.Center.Y), c.Center, 2*math.Pi-1e-6, 0)
	pts := full.ToPolyline(accuracy)
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = -1
	}
	return geom.Chain{Points: pts, ArcIndex: idx, Closed: true}
}

// SegmentHull builds the hull for a straight track segment of the given
// width inflated by clearance d: an octagon around the segment's bounding
// box, widened by the half-width already folded into d by the caller.
func SegmentHull(s geom.Segment, d int64) geom.Chain {
	return Octagon(geom.RectFromPoints(s.A, s.B), d)
}

// ArcHull builds a per-sample perpendicular-offset polyline on each side of
// the arc and merges them into a closed hull, per §4.2's arc hull
// construction.
func ArcHull(a geom.Arc, d int64, accuracy int64) geom.Chain {
	samples := a.ToPolyline(accuracy)
	if len(samples) < 2 {
		return CircleHull(geom.Circle{Center: a.Start, Radius: 0}, d, accuracy)
	}
	outer := make([]geom.Point, 0, len(samples))
	inner := make([]geom.Point, 0, len(samples))
	for _, p := range samples {
		v := geom.VectorTo(a.Center, p)
		ux, uy := v.Normalized()
		outer = append(outer, geom.Pt(p.X+int64(math.Round(ux*float64(d))), p.Y+int64(math.Round(uy*float64(d)))))
		inner = append(inner, geom.Pt(p.X-int64(math.Round(ux*float64(d))), p.Y-int64(math.Round(uy*float64(d)))))
	}
	// Merge outer forward + inner reversed + end caps into one closed chain.
	pts := make([]geom.Point, 0, len(outer)+len(inner))
	pts = append(pts, outer...)
	for i := len(inner) - 1; i >= 0; i-- {
		pts = append(pts, inner[i])
	}
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = -1
	}
	return geom.Chain{Points: pts, ArcIndex: idx, Closed: true}
}
