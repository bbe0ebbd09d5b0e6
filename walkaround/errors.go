package walkaround

import "errors"

var (
	// ErrNoIntersection is returned when the candidate segment does not
	// actually cross the obstacle's hull boundary (fewer than two crossing
	// points), so there is nothing to walk around.
	ErrNoIntersection = errors.New("walkaround: segment does not cross obstacle hull")

	// ErrIterationLimit is returned by Attempt when more than maxHops
	// obstacles are encountered while straightening the path (§4.3's
	// 1000-hop iteration budget).
	ErrIterationLimit = errors.New("walkaround: iteration budget exceeded")

	// ErrEndpointInsideObstacle is returned when the path's own start or
	// end point lies inside an obstacle's hull, which walkaround cannot
	// resolve (the placer must back the endpoint out first).
	ErrEndpointInsideObstacle = errors.New("walkaround: path endpoint is inside an obstacle")
)
