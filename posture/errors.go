package posture

import "errors"

// ErrEmptyTrail is returned by callers that need at least one observed
// sample before a dominant direction can be computed. Tracer itself never
// returns this -- it falls back to the chosen posture's own candidate
// instead -- but Choose callers that bypass the trail may want it.
var ErrEmptyTrail = errors.New("posture: no trail samples observed yet")
