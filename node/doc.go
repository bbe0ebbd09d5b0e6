// Package node implements the router's world model: a spatially indexed,
// branchable container of routable items. A Node owns its spatial index
// and joint graph at the root; child branches created with Branch record
// only what they add, remove, or override, and commit replays that delta
// through the external board interface (iface package).
//
// The spatial index itself is a hand-rolled layer-partitioned grid bucket
// index (cells of configurable size, inflated by the node's current max
// clearance), not a literal R-tree: no available dependency provides one,
// so this is implemented on the standard library per the "no suitable
// third-party library" justification recorded in DESIGN.md. Everything
// else in this package -- the joint bookkeeping, the branch/override
// masking, the collision arithmetic -- is new code grounded on jointgraph
// and geom.
package node
