package node

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
)

// boundingBox returns the axis-aligned bounding box of a linked item's raw
// geometry (not inflated by clearance -- the index itself adds the
// clearance inflation at insert time).
func boundingBox(it item.Linked) geom.Rect {
	switch v := it.(type) {
	case *item.Segment:
		return geom.RectFromPoints(v.Shape.A, v.Shape.B)
	case *item.Arc:
		return geom.RectFromPoints(v.Shape.Start, v.Shape.Mid, v.Shape.End, v.Shape.Center)
	case *item.Via:
		r := v.DiameterOnLayer(v.Layers().Start) / 2
		return geom.Rect{Min: geom.Pt(v.Pos.X-r, v.Pos.Y-r), Max: geom.Pt(v.Pos.X+r, v.Pos.Y+r)}
	case *item.Solid:
		box := v.Rect
		if v.Circle != nil {
			c := *v.Circle
			cbox := geom.Rect{Min: geom.Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius), Max: geom.Pt(c.Center.X+c.Radius, c.Center.Y+c.Radius)}
			if box == (geom.Rect{}) {
				return cbox
			}
			return geom.RectFromPoints(box.Min, box.Max, cbox.Min, cbox.Max)
		}
		return box
	case *item.Hole:
		c := v.Shape
		return geom.Rect{Min: geom.Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius), Max: geom.Pt(c.Center.X+c.Radius, c.Center.Y+c.Radius)}
	default:
		return geom.Rect{}
	}
}

// halfWidth returns half the copper width of an item, used in the
// collision contract's clearance + halfWidth(X) + halfWidth(Y) - 1
// formula. Vias/solids/holes contribute their radius instead of a line
// width.
func halfWidth(it item.Item) int64 {
	switch v := it.(type) {
	case *item.Segment:
		return v.Width / 2
	case *item.Arc:
		return v.Shape.Width / 2
	case *item.Via:
		return v.DiameterOnLayer(v.Layers().Start) / 2
	case *item.Solid:
		if v.Circle != nil {
			return v.Circle.Radius
		}
		return 0
	case *item.Hole:
		return v.Shape.Radius
	case *item.Line:
		return v.Width / 2
	default:
		return 0
	}
}

// shapeDistance returns the minimum euclidean distance between the raw
// (uninflated) geometry of two items. Used by the collision engine to
// decide collide(X,Y,req) := distance(X,Y) < req.
func shapeDistance(a, b item.Item) float64 {
	sa, ra, okA := asCircle(a)
	sb, rb, okB := asCircle(b)
	if okA && okB {
		return sa.Distance(sb) - float64(ra) - float64(rb)
	}
	if okA {
		return segmentsDistanceToPoint(b, sa) - float64(ra)
	}
	if okB {
		return segmentsDistanceToPoint(a, sb) - float64(rb)
	}
	return segmentsDistance(a, b)
}

func asCircle(it item.Item) (geom.Point, int64, bool) {
	switch v := it.(type) {
	case *item.Via:
		return v.Pos, v.DiameterOnLayer(v.Layers().Start) / 2, true
	case *item.Hole:
		return v.Shape.Center, v.Shape.Radius, true
	case *item.Solid:
		if v.Circle != nil {
			return v.Circle.Center, v.Circle.Radius, true
		}
	}
	return geom.Point{}, 0, false
}

func asSegments(it item.Item) []geom.Segment {
	switch v := it.(type) {
	case *item.Segment:
		return []geom.Segment{v.Shape}
	case *item.Arc:
		pts := v.Shape.ToPolyline(1000)
		segs := make([]geom.Segment, 0, len(pts)-1)
		for i := 0; i+1 < len(pts); i++ {
			segs = append(segs, geom.Seg(pts[i], pts[i+1]))
		}
		return segs
	case *item.Solid:
		box := v.Rect
		return geom.Chain{Points: []geom.Point{box.Min, {X: box.Max.X, Y: box.Min.Y}, box.Max, {X: box.Min.X, Y: box.Max.Y}}, Closed: true}.Segments()
	case *item.Line:
		return v.Chain.Segments()
	}
	return nil
}

func segmentsDistance(a, b item.Item) float64 {
	segsA := asSegments(a)
	segsB := asSegments(b)
	if len(segsA) == 0 || len(segsB) == 0 {
		return 1e18
	}
	best := -1.0
	for _, sa := range segsA {
		for _, sb := range segsB {
			d := geom.DistanceSegToSeg(sa, sb)
			if best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

func segmentsDistanceToPoint(it item.Item, p geom.Point) float64 {
	segs := asSegments(it)
	if len(segs) == 0 {
		return 1e18
	}
	best := -1.0
	for _, s := range segs {
		d := s.DistanceTo(p)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
