// Package shove implements rank-based push propagation (§2.8, §4.4): moving
// an item displaces whatever it newly collides with, which in turn
// displaces its own obstacles, breadth-first, lowest-rank-first (non-routable
// items cannot be displaced and fail the whole attempt; rank alone does
// not exempt an item). The worklist/queue shape and the state-machine result follow
// a breadth-first walker; the rank ordering follows a greedy-lowest-first
// selection in the spirit of a minimum-spanning-tree builder.
package shove
