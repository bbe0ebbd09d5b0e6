package shove

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
)

// translate returns a copy of it with its geometry shifted by v, keeping
// the same UID (and host reference) so the node's branch-overlay Add/Remove
// cycle registers this as a replacement of the original rather than a fresh
// item (§4.1 commit ordering pairs same-UID add/remove into one update).
func translate(it item.Linked, v geom.Vector) item.Linked {
	switch x := it.(type) {
	case *item.Segment:
		cp := *x
		cp.Shape = geom.Segment{A: v.Apply(x.Shape.A), B: v.Apply(x.Shape.B)}
		return &cp
	case *item.Arc:
		cp := *x
		cp.Shape = x.Shape
		cp.Shape.Start = v.Apply(x.Shape.Start)
		cp.Shape.Mid = v.Apply(x.Shape.Mid)
		cp.Shape.End = v.Apply(x.Shape.End)
		cp.Shape.Center = v.Apply(x.Shape.Center)
		return &cp
	case *item.Via:
		cp := *x
		cp.Pos = v.Apply(x.Pos)
		return &cp
	case *item.Solid:
		cp := *x
		cp.Rect = geom.Rect{Min: v.Apply(x.Rect.Min), Max: v.Apply(x.Rect.Max)}
		if x.Circle != nil {
			c := *x.Circle
			c.Center = v.Apply(c.Center)
			cp.Circle = &c
		}
		return &cp
	case *item.Hole:
		cp := *x
		cp.Shape.Center = v.Apply(x.Shape.Center)
		return &cp
	default:
		return it
	}
}

// pushVector returns the displacement to apply to obstacle so it clears
// mover by the required clearance, directed from mover's anchorPoint
// toward obstacle's anchorPoint.
func pushVector(mover, obstacle item.Item, required int64, distance float64) geom.Vector {
	moverPt := anchorPoint(mover)
	obstaclePt := anchorPoint(obstacle)
	dir := geom.VectorTo(moverPt, obstaclePt)
	dx, dy := dir.Normalized()
	if dx == 0 && dy == 0 {
		dx, dy = 1, 0
	}
	shortfall := float64(required) - distance
	if shortfall < 1 {
		shortfall = 1
	}
	return geom.Vec(roundTo(dx*shortfall), roundTo(dy*shortfall))
}

func roundTo(f float64) int64 {
	if f < 0 {
		return int64(f - 0.5)
	}
	return int64(f + 0.5)
}

// anchorPoint returns a representative point for an item's geometry, used
// to derive the push direction (exact for circular items, the midpoint for
// everything else).
func anchorPoint(it item.Item) geom.Point {
	switch v := it.(type) {
	case *item.Segment:
		return geom.Point{X: (v.Shape.A.X + v.Shape.B.X) / 2, Y: (v.Shape.A.Y + v.Shape.B.Y) / 2}
	case *item.Arc:
		return v.Shape.Mid
	case *item.Via:
		return v.Pos
	case *item.Solid:
		return v.Rect.Center()
	case *item.Hole:
		return v.Shape.Center
	default:
		return geom.Point{}
	}
}
