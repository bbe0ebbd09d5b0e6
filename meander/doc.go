// Package meander fits a tuned-length polyline between a baseline's two
// endpoints: a run of chamfered U-shape bumps walked along the baseline,
// grown in amplitude while the result is still short of the target length
// and trimmed from the end while it overshoots, bounded the way two_opt
// iterates toward a local optimum rather than any fixed step count.
//
// Self-intersection is checked per candidate bump against every bump
// already placed in the same Fit call; FitPair's two parallel runs are
// never cross-checked against each other, matching the "excluding parallel
// ones" carve-out.
package meander
