package shove

import "errors"

var (
	// ErrIterationLimit is returned when propagation exceeds MaxIterations
	// rounds without reaching a stable state.
	ErrIterationLimit = errors.New("shove: iteration budget exceeded")

	// ErrObstacleLocked is returned when propagation would have to move a
	// non-routable item.
	ErrObstacleLocked = errors.New("shove: obstacle cannot be displaced")
)
