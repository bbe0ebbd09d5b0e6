package diffpair

import "errors"

var (
	// ErrAlreadyRouting is returned by Start when an interaction is
	// already in progress.
	ErrAlreadyRouting = errors.New("diffpair: already routing")

	// ErrNotRouting is returned by Move/FixRoute before Start or after
	// FixRoute(true).
	ErrNotRouting = errors.New("diffpair: not currently routing")

	// ErrGapOutOfTolerance is returned by Start when the anchor-to-anchor
	// distance differs from the configured gap plus track width by more
	// than 10%.
	ErrGapOutOfTolerance = errors.New("diffpair: anchor spacing is not within tolerance of the configured gap")

	// ErrNonRoutableStartPoint is returned by Start when either anchor
	// sits on a non-routable obstacle.
	ErrNonRoutableStartPoint = errors.New("diffpair: an anchor point is not routable")

	// ErrNothingToFix is returned by FixRoute when either head has fewer
	// than two points.
	ErrNothingToFix = errors.New("diffpair: nothing to fix, move first")

	// ErrNothingToUnfix is returned by UnfixRoute with an empty undo
	// stack.
	ErrNothingToUnfix = errors.New("diffpair: nothing to unfix")

	// ErrAllModesFailed marks a joint head as violating; FixRoute still
	// succeeds if CanViolateDRC is set.
	ErrAllModesFailed = errors.New("diffpair: walkaround and shove both failed for this pair")
)
