package geom

import "math"

// Point is an integer 2D coordinate in internal units.
type Point struct {
	X, Y int64
}

// Pt is a short constructor for Point, mirroring the terse builder helpers
// elsewhere in this module.
func Pt(x, y int64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by a rational factor, rounded to the nearest
// integer. Used for midpoint/offset computations that must stay on-grid.
func (p Point) Scale(f float64) Point {
	return Point{
		X: int64(math.Round(float64(p.X) * f)),
		Y: int64(math.Round(float64(p.Y) * f)),
	}
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// DistanceSq returns the squared euclidean distance between p and q.
// The coordinate differences are converted to float64 before squaring so
// large coordinates cannot overflow; callers comparing against clearances
// use DistanceSq to avoid a sqrt.
func (p Point) DistanceSq(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return dx*dx + dy*dy
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// Vector is a displacement between two points; distinct type from Point so
// hull/shove math can't accidentally add two absolute positions together.
type Vector struct {
	X, Y int64
}

// Vec constructs a Vector.
func Vec(x, y int64) Vector { return Vector{X: x, Y: y} }

// VectorTo returns the vector from p to q (q - p).
func VectorTo(p, q Point) Vector { return Vector{q.X - p.X, q.Y - p.Y} }

// Length returns the euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(float64(v.X*v.X + v.Y*v.Y))
}

// Normalized returns a unit-length float direction; the zero vector
// normalizes to (0,0).
func (v Vector) Normalized() (float64, float64) {
	l := v.Length()
	if l == 0 {
		return 0, 0
	}
	return float64(v.X) / l, float64(v.Y) / l
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vector) Perp() Vector { return Vector{-v.Y, v.X} }

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) int64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the 2D cross product (z-component) of v and w. Its sign
// gives the turn direction from v to w: positive is counter-clockwise.
func (v Vector) Cross(w Vector) int64 { return v.X*w.Y - v.Y*w.X }

// Apply translates p by v.
func (v Vector) Apply(p Point) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Orientation classifies the turn a->b->c makes.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// Orient returns the orientation of the ordered triple (a, b, c).
func Orient(a, b, c Point) Orientation {
	cross := VectorTo(a, b).Cross(VectorTo(a, c))
	switch {
	case cross == 0:
		return Collinear
	case cross < 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}
