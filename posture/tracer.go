package posture

import "github.com/solderpath/pns/geom"

const defaultMaxTrail = 8

// Tracer tracks recent cursor samples and the currently preferred posture,
// applying a lock/unlock hysteresis band so that small mouse jitter near the
// decision boundary doesn't flip the posture every frame (§4.8).
type Tracer struct {
	trail    []geom.Point
	maxTrail int

	current Posture
	locked  bool

	// manualLock is set by FlipPosture: while true, Choose returns the
	// forced posture outright instead of running the trail-hysteresis
	// decision, until the next Reset or FlipPosture call.
	manualLock bool

	lockMargin   float64
	unlockMargin float64
}

// NewTracer builds a Tracer starting in DiagonalFirst with the given
// hysteresis margins (in the same normalized-dot-product units Choose
// compares, roughly -1..1). lockMargin must be >= unlockMargin; once locked,
// the dominant direction must favor the other candidate by at least
// unlockMargin before the posture flips back.
func NewTracer(lockMargin, unlockMargin float64) *Tracer {
	return &Tracer{
		maxTrail:     defaultMaxTrail,
		current:      DiagonalFirst,
		lockMargin:   lockMargin,
		unlockMargin: unlockMargin,
	}
}

// Observe appends a new cursor sample, discarding the oldest once the trail
// exceeds its capacity.
func (t *Tracer) Observe(p geom.Point) {
	t.trail = append(t.trail, p)
	if len(t.trail) > t.maxTrail {
		t.trail = t.trail[len(t.trail)-t.maxTrail:]
	}
}

// Reset clears the trail and unlocks the posture, called when a new routing
// gesture starts (new anchor picked).
func (t *Tracer) Reset() {
	t.trail = t.trail[:0]
	t.locked = false
	t.manualLock = false
}

// Posture returns the tracer's current posture.
func (t *Tracer) Posture() Posture {
	return t.current
}

// FlipPosture forces the tracer to the other direction and marks it
// manually locked (§4.8): Choose stops running its trail-hysteresis
// decision and keeps returning the forced posture until the next Reset or
// FlipPosture call.
func (t *Tracer) FlipPosture() {
	t.current = t.current.Flipped()
	t.locked = true
	t.manualLock = true
}

// dominantDirection sums the deltas between consecutive trail samples,
// approximating which way the cursor has been moving lately. The zero
// vector is returned when fewer than two samples have been observed.
func (t *Tracer) dominantDirection() geom.Vector {
	var sum geom.Vector
	for i := 1; i < len(t.trail); i++ {
		d := geom.VectorTo(t.trail[i-1], t.trail[i])
		sum.X += d.X
		sum.Y += d.Y
	}
	return sum
}

// normalizedDot returns the cosine of the angle between a and b, 0 if
// either is the zero vector.
func normalizedDot(a, b geom.Vector) float64 {
	ax, ay := a.Normalized()
	bx, by := b.Normalized()
	if (ax == 0 && ay == 0) || (bx == 0 && by == 0) {
		return 0
	}
	return ax*bx + ay*by
}

// leadingDirection returns the direction of a candidate chain's first leg.
func leadingDirection(c geom.Chain) geom.Vector {
	if len(c.Points) < 2 {
		return geom.Vector{}
	}
	return geom.VectorTo(c.Points[0], c.Points[1])
}

// Choose picks between the diagonal-first and straight-first candidates
// from start to end, biasing towards whichever one's leading direction
// best matches the recent trail, and applying lock/unlock hysteresis so the
// choice doesn't chatter near the decision boundary. The winning posture
// becomes the tracer's current posture. If FlipPosture has manually locked
// the posture, Choose honors it outright and skips the hysteresis check.
func (t *Tracer) Choose(start, end geom.Point) geom.Chain {
	if t.manualLock {
		return candidateFor(t.current, start, end)
	}

	diag, straight := Candidates(start, end)
	trail := t.dominantDirection()

	diagScore := normalizedDot(trail, leadingDirection(diag))
	straightScore := normalizedDot(trail, leadingDirection(straight))
	margin := diagScore - straightScore

	switch {
	case !t.locked:
		if margin >= t.lockMargin {
			t.current, t.locked = DiagonalFirst, true
		} else if margin <= -t.lockMargin {
			t.current, t.locked = StraightFirst, true
		}
	default:
		switch t.current {
		case DiagonalFirst:
			if margin <= -t.unlockMargin {
				t.current = StraightFirst
			}
		case StraightFirst:
			if margin >= t.unlockMargin {
				t.current = DiagonalFirst
			}
		}
	}

	return candidateFor(t.current, start, end)
}
