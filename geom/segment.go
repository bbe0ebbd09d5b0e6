package geom

import "math"

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Seg constructs a Segment.
func Seg(a, b Point) Segment { return Segment{A: a, B: b} }

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 { return s.A.Distance(s.B) }

// Vector returns the displacement from A to B.
func (s Segment) Vector() Vector { return VectorTo(s.A, s.B) }

// Reversed returns the segment with endpoints swapped.
func (s Segment) Reversed() Segment { return Segment{A: s.B, B: s.A} }

// IsDegenerate reports whether A and B coincide.
func (s Segment) IsDegenerate() bool { return s.A.Equal(s.B) }

// NearestPoint returns the closest point on the (closed) segment to p,
// along with the parametric distance t in [0,1] from A.
func (s Segment) NearestPoint(p Point) (Point, float64) {
	if s.IsDegenerate() {
		return s.A, 0
	}
	abx, aby := float64(s.B.X-s.A.X), float64(s.B.Y-s.A.Y)
	apx, apy := float64(p.X-s.A.X), float64(p.Y-s.A.Y)
	t := (apx*abx + apy*aby) / (abx*abx + aby*aby)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{
		X: int64(math.Round(float64(s.A.X) + t*abx)),
		Y: int64(math.Round(float64(s.A.Y) + t*aby)),
	}, t
}

// DistanceTo returns the euclidean distance from p to the nearest point on s.
func (s Segment) DistanceTo(p Point) float64 {
	near, _ := s.NearestPoint(p)
	return near.Distance(p)
}

// Intersect computes the intersection point of two segments, if any.
// Returns ok=false for parallel/non-crossing segments. Shared endpoints
// count as an intersection.
func (s Segment) Intersect(o Segment) (Point, bool) {
	d1 := s.Vector()
	d2 := o.Vector()
	denom := d1.Cross(d2)
	if denom == 0 {
		return Point{}, false // parallel or collinear; caller handles overlap separately
	}
	diff := VectorTo(s.A, o.A)
	tNum := diff.Cross(d2)
	uNum := diff.Cross(d1)
	t := float64(tNum) / float64(denom)
	u := float64(uNum) / float64(denom)
	const eps = 1e-9
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return Point{}, false
	}
	return Point{
		X: int64(math.Round(float64(s.A.X) + t*float64(d1.X))),
		Y: int64(math.Round(float64(s.A.Y) + t*float64(d1.Y))),
	}, true
}

// DistanceSegToSeg returns the minimum distance between two segments.
func DistanceSegToSeg(s, o Segment) float64 {
	if _, ok := s.Intersect(o); ok {
		return 0
	}
	d1 := s.DistanceTo(o.A)
	d2 := s.DistanceTo(o.B)
	d3 := o.DistanceTo(s.A)
	d4 := o.DistanceTo(s.B)
	return math.Min(math.Min(d1, d2), math.Min(d3, d4))
}

// Circle is a center and radius, used for via pads, drilled holes, and
// round-corner approximations.
type Circle struct {
	Center Point
	Radius int64
}

// Contains reports whether p lies within (or on) the circle.
func (c Circle) Contains(p Point) bool {
	return c.Center.DistanceSq(p) <= float64(c.Radius)*float64(c.Radius)
}

// DistanceTo returns the distance from p to the circle's boundary; negative
// if p is inside.
func (c Circle) DistanceTo(p Point) float64 {
	return c.Center.Distance(p) - float64(c.Radius)
}

// Rect is an axis-aligned rectangle, Min inclusive, Max inclusive.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the bounding rectangle of the given points.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d int64) Rect {
	return Rect{Min: Point{r.Min.X - d, r.Min.Y - d}, Max: Point{r.Max.X + d, r.Max.Y + d}}
}

// Intersects reports whether two rectangles overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X && r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// Contains reports whether p lies within (or on the boundary of) r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width and Height return the rectangle's extents.
func (r Rect) Width() int64  { return r.Max.X - r.Min.X }
func (r Rect) Height() int64 { return r.Max.Y - r.Min.Y }

// Center returns the rectangle's midpoint, truncating toward zero on ties
// (Go integer division).
func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}
