package placer

import "errors"

var (
	// ErrNonRoutableStartPoint is returned by Start when the cursor landed
	// on a non-plated hole, a keepout, or anything else flagged
	// non-routable at that layer.
	ErrNonRoutableStartPoint = errors.New("placer: start point is not routable")

	// ErrStartViolatesDRC is returned by Start when even a zero-length
	// trace at minimum track width would immediately collide.
	ErrStartViolatesDRC = errors.New("placer: start point violates clearance at minimum track width")

	// ErrAlreadyRouting is returned by Start when called while a route is
	// already in progress.
	ErrAlreadyRouting = errors.New("placer: a route is already in progress")

	// ErrNotRouting is returned by Move/FixRoute when called
	// before Start or after Finish.
	ErrNotRouting = errors.New("placer: no route in progress")

	// ErrNothingToFix is returned by FixRoute when the head is empty (the
	// cursor never moved away from p_start).
	ErrNothingToFix = errors.New("placer: nothing to fix, head is empty")

	// ErrNothingToUnfix is returned by UnfixRoute when the fixed-stage
	// stack is empty.
	ErrNothingToUnfix = errors.New("placer: no fixed stage to undo")

	// ErrAllModesFailed's message is recorded as the failure reason when
	// walkaround and shove both fail to produce a usable head; Move then
	// keeps the colliding candidate as the head and returns no error.
	ErrAllModesFailed = errors.New("placer: walkaround and shove both failed for this head")
)
