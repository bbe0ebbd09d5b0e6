package dragger

import "errors"

var (
	// ErrNotDragging is returned by Move/FixDrag before Start or after
	// FixDrag/CancelDrag.
	ErrNotDragging = errors.New("dragger: no drag in progress")

	// ErrAlreadyDragging is returned by Start when a drag is already
	// active.
	ErrAlreadyDragging = errors.New("dragger: a drag is already in progress")

	// ErrSeedNotAssemblable is returned by Start when the seed item is
	// neither a Via nor a Segment/Arc that assembles into a line.
	ErrSeedNotAssemblable = errors.New("dragger: seed item cannot be dragged")

	// ErrAllModesFailed marks a drag result as violating, mirroring
	// placer.ErrAllModesFailed: the caller may still FixDrag if DRC
	// violations are allowed.
	ErrAllModesFailed = errors.New("dragger: walkaround and shove both failed for this drag")

	// ErrEmptyGroup is returned by MultiDragger.Start when no seed item
	// has been added.
	ErrEmptyGroup = errors.New("dragger: multi-drag needs at least one seed item")
)
