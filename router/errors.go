package router

import "errors"

var (
	// ErrInteractionInProgress is returned by every Start* method when
	// another interaction is already open; §5 allows only one current
	// branch-tip at a time.
	ErrInteractionInProgress = errors.New("router: an interaction is already in progress")

	// ErrNoInteraction is returned by Move/Abort when nothing is open.
	ErrNoInteraction = errors.New("router: no interaction in progress")

	// ErrWrongInteraction is returned when a method is called against an
	// open interaction of the wrong kind (e.g. ToggleVia during a drag),
	// and by FixRoute/FixDrag/ToggleVia/UnfixRoute/CancelDrag when nothing
	// is open.
	ErrWrongInteraction = errors.New("router: open interaction does not support this call")

	// ErrSeedGrabPointMismatch is returned by StartMultiDrag when the
	// seeds and grab-point slices differ in length.
	ErrSeedGrabPointMismatch = errors.New("router: multi-drag needs one grab point per seed")
)
