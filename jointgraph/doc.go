// Package jointgraph is the joint graph backing the router's world model:
// for every point where at least one linked item meets another on a given
// layer range and net, a Joint vertex records the set of incident items.
// Segments and arcs are the graph's edges (they connect exactly two
// joints); vias, solids, and holes register as vertex-only incidences
// (their "other end" is the component they terminate, not another joint).
//
// Its vertex/edge catalog, adjacency list, read/write locks, and
// CloneEmpty discipline follow a general-purpose graph library's
// shape, but keyed by JointKey (position + layer range + net) instead of
// an arbitrary string vertex ID, and with edges always carrying the
// linked item's UID as their identity -- the joint/line-assembly
// structure §3 and §4.1 describe, reusing a proven locking and cloning
// discipline instead of reinventing it.
package jointgraph
