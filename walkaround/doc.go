// Package walkaround implements the single line-edit walkaround algorithm
// of §4.3: given a candidate path that intersects an obstacle, it finds
// where the colliding edge crosses the obstacle's hull, takes the first and
// last crossings along that edge as entry and exit, and walks the obstacle's hull boundary in whichever direction (clockwise
// or counter-clockwise) produces the shorter detour, splicing the result
// back into the path. The outer Attempt loop repeats this per obstacle
// encountered along the path until the path is clear or a 1000-hop budget
// is exhausted (§4.3 "walkaround fails if ... the iteration budget is
// exceeded").
package walkaround
