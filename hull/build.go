package hull

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
)

// DefaultArcAccuracy is the polyline sampling accuracy (internal units)
// used when the caller doesn't have a tighter requirement.
const DefaultArcAccuracy int64 = 1000

// For builds the hull for it, inflated by the given clearance plus half of
// walkaroundWidth (the caller-supplied width of the line that will walk
// around it), on the given layer. layer is only meaningful for multi-layer
// items (vias); -1 means "use the item's own layer".
//
// This is the canonical Hull(clearance, walkaroundWidth, layer) API named
// in §4.2: callers must have already resolved clearance from the rule
// resolver and pass it and the walkaround width separately; the inflation
// distance clearance + width/2 is computed here.
func For(it item.Item, clearance, walkaroundWidth int64, layer int) (geom.Chain, error) {
	d := clearance + walkaroundWidth/2
	if d < 0 {
		d = 0
	}
	switch v := it.(type) {
	case *item.Segment:
		rect := geom.RectFromPoints(v.Shape.A, v.Shape.B)
		return Octagon(rect, d+v.Width/2), nil
	case *item.Arc:
		return ArcHull(v.Shape, d+v.Shape.Width/2, DefaultArcAccuracy), nil
	case *item.Via:
		l := layer
		if l < 0 {
			l = v.Layers().Start
		}
		c := v.CircleOnLayer(l)
		return CircleHull(c, d, DefaultArcAccuracy), nil
	case *item.Solid:
		return solidHull(v, d)
	case *item.Hole:
		return CircleHull(v.Shape, d, DefaultArcAccuracy), nil
	case *item.Line:
		return lineHull(v, d)
	default:
		return geom.Chain{}, ErrUnsupportedKind
	}
}

func solidHull(s *item.Solid, d int64) (geom.Chain, error) {
	if s.Circle != nil && s.Rect == (geom.Rect{}) {
		return CircleHull(*s.Circle, d, DefaultArcAccuracy), nil
	}
	rectHull := Octagon(s.Rect, d)
	if s.Circle == nil {
		return rectHull, nil
	}
	circHull := CircleHull(*s.Circle, d, DefaultArcAccuracy)
	return ConvexHull(append(append([]geom.Point(nil), rectHull.Points...), circHull.Points...)), nil
}

// lineHull merges the per-segment/arc hulls of a line's chain into one
// hull suitable for walkaround/shove obstacle tests on the line as a
// whole.
func lineHull(l *item.Line, d int64) (geom.Chain, error) {
	segs := l.Chain.Segments()
	if len(segs) == 0 {
		if l.Chain.Len() == 1 {
			return Octagon(geom.RectFromPoints(l.Chain.Points[0]), d+l.Width/2), nil
		}
		return geom.Chain{}, ErrUnsupportedKind
	}
	var all []geom.Point
	for _, s := range segs {
		h := SegmentHull(s, d+l.Width/2)
		all = append(all, h.Points...)
	}
	return ConvexHull(all), nil
}
