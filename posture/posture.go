package posture

import "github.com/solderpath/pns/geom"

// Posture is the router's current preference for which of the two 45-degree
// candidates to offer when a straight line isn't available.
type Posture int

const (
	// DiagonalFirst routes the 45-degree segment closest to the start
	// anchor, then finishes with a straight segment into the cursor.
	DiagonalFirst Posture = iota
	// StraightFirst routes the straight segment first, saving the
	// 45-degree turn for just before the cursor.
	StraightFirst
)

// Flipped returns the other posture.
func (p Posture) Flipped() Posture {
	if p == DiagonalFirst {
		return StraightFirst
	}
	return DiagonalFirst
}

// String renders the posture for logs and test failure messages.
func (p Posture) String() string {
	if p == DiagonalFirst {
		return "diagonal-first"
	}
	return "straight-first"
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign64(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Candidates builds the two two-segment 45-degree routes from start to end.
// When start and end are axis-aligned or perfectly diagonal, both
// candidates degenerate to the same (shorter) path.
func Candidates(start, end geom.Point) (diagonalFirst, straightFirst geom.Chain) {
	dx, dy := end.X-start.X, end.Y-start.Y
	adx, ady := abs64(dx), abs64(dy)
	diagLen := adx
	if ady < diagLen {
		diagLen = ady
	}
	sx, sy := sign64(dx), sign64(dy)

	diagBend := geom.Pt(start.X+sx*diagLen, start.Y+sy*diagLen)
	diagonalFirst = geom.NewChain(start, diagBend, end)

	var straightBend geom.Point
	if adx >= ady {
		straightBend = geom.Pt(end.X-sx*diagLen, start.Y)
	} else {
		straightBend = geom.Pt(start.X, end.Y-sy*diagLen)
	}
	if diagLen == 0 || adx == ady {
		straightBend = diagBend
	}
	straightFirst = geom.NewChain(start, straightBend, end)
	return diagonalFirst, straightFirst
}

// candidateFor returns the candidate chain matching p.
func candidateFor(p Posture, start, end geom.Point) geom.Chain {
	diag, straight := Candidates(start, end)
	if p == DiagonalFirst {
		return diag
	}
	return straight
}
