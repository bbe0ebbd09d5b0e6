package geom

import "math"

// Arc is a circular arc defined by start, end, center and width. Mid is
// kept for round-tripping with callers that construct arcs from
// start/mid/end triples, but Center/Radius are the canonical representation
// once constructed: NewArcSME always recomputes Mid as the true geometric
// midpoint, so an off-centre caller mid is replaced (ArcMidInvalid in the error
// taxonomy — corrected, not rejected, per the router's "no exceptions for
// routing control" discipline).
type Arc struct {
	Start, Mid, End Point
	Center          Point
	Radius          int64
	Width           int64
	ClockwiseFrom   bool // true if Start->End sweeps clockwise
}

// NewArcSME builds an Arc from start/mid/end points. mid only selects the
// sweep direction; Mid is then always set to the true geometric midpoint
// of the fitted circle's sweep, so an off-centre mid is corrected rather
// than returning an error, matching the ArcMidInvalid recovery policy.
func NewArcSME(start, mid, end Point, width int64) (Arc, error) {
	center, radius, ok := circumcenter(start, mid, end)
	if !ok {
		return Arc{}, ErrDegenerateArc
	}
	a := Arc{Start: start, End: end, Center: center, Radius: radius, Width: width}
	a.ClockwiseFrom = sweepIsClockwise(center, start, mid, end)
	a.Mid = a.PointAt(0.5)
	return a, nil
}

// NewArcSCA builds an Arc from a start point, center, and signed central
// angle in radians (positive = counter-clockwise).
func NewArcSCA(start, center Point, angle float64, width int64) Arc {
	radius := int64(math.Round(start.Distance(center)))
	a := Arc{Start: start, Center: center, Radius: radius, Width: width}
	startAngle := math.Atan2(float64(start.Y-center.Y), float64(start.X-center.X))
	endAngle := startAngle + angle
	a.End = Point{
		X: center.X + int64(math.Round(float64(radius)*math.Cos(endAngle))),
		Y: center.Y + int64(math.Round(float64(radius)*math.Sin(endAngle))),
	}
	a.ClockwiseFrom = angle < 0
	a.Mid = a.PointAt(0.5)
	return a
}

// circumcenter fits the circle through three points. ok=false if the points
// are collinear or coincident.
func circumcenter(a, b, c Point) (Point, int64, bool) {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1e-6 {
		return Point{}, 0, false
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	center := Point{X: int64(math.Round(ux)), Y: int64(math.Round(uy))}
	radius := int64(math.Round(center.Distance(a)))
	return center, radius, true
}

// sweepIsClockwise reports whether the start->mid->end arc goes clockwise.
func sweepIsClockwise(center, start, mid, end Point) bool {
	startAngle := math.Atan2(float64(start.Y-center.Y), float64(start.X-center.X))
	midAngle := math.Atan2(float64(mid.Y-center.Y), float64(mid.X-center.X))
	endAngle := math.Atan2(float64(end.Y-center.Y), float64(end.X-center.X))
	// Normalize relative to start, walking CCW; if mid comes "after" end in
	// that walk, the true sweep is clockwise.
	norm := func(a float64) float64 {
		for a < startAngle {
			a += 2 * math.Pi
		}
		return a
	}
	return norm(midAngle) > norm(endAngle)
}

// CentralAngle returns the signed sweep angle from Start to End in radians,
// positive for counter-clockwise.
func (a Arc) CentralAngle() float64 {
	sa := math.Atan2(float64(a.Start.Y-a.Center.Y), float64(a.Start.X-a.Center.X))
	ea := math.Atan2(float64(a.End.Y-a.Center.Y), float64(a.End.X-a.Center.X))
	d := ea - sa
	if a.ClockwiseFrom {
		for d > 0 {
			d -= 2 * math.Pi
		}
	} else {
		for d < 0 {
			d += 2 * math.Pi
		}
	}
	return d
}

// PointAt returns the point on the arc at parametric position t in [0,1]
// from Start to End along its sweep direction.
func (a Arc) PointAt(t float64) Point {
	sa := math.Atan2(float64(a.Start.Y-a.Center.Y), float64(a.Start.X-a.Center.X))
	angle := sa + a.CentralAngle()*t
	return Point{
		X: a.Center.X + int64(math.Round(float64(a.Radius)*math.Cos(angle))),
		Y: a.Center.Y + int64(math.Round(float64(a.Radius)*math.Sin(angle))),
	}
}

// ToPolyline samples the arc into a polyline accurate to within `accuracy`
// internal units of the ideal circle (the deviation of a chord from its
// arc never exceeds accuracy+1).
func (a Arc) ToPolyline(accuracy int64) []Point {
	if accuracy < 1 {
		accuracy = 1
	}
	sweep := math.Abs(a.CentralAngle())
	if sweep == 0 || a.Radius == 0 {
		return []Point{a.Start, a.End}
	}
	// Max chord half-angle such that sagitta <= accuracy: r(1-cos(h)) <= acc.
	cosH := 1 - float64(accuracy)/float64(a.Radius)
	if cosH < -1 {
		cosH = -1
	}
	halfAngle := math.Acos(cosH)
	if halfAngle <= 0 {
		halfAngle = sweep / 2
	}
	steps := int(math.Ceil(sweep / (2 * halfAngle)))
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, a.PointAt(float64(i)/float64(steps)))
	}
	return pts
}

// Reversed returns the arc traversed from End to Start.
func (a Arc) Reversed() Arc {
	r := a
	r.Start, r.End = a.End, a.Start
	r.ClockwiseFrom = !a.ClockwiseFrom
	r.Mid = r.PointAt(0.5)
	return r
}
