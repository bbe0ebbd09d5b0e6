// Package router is the composition root that ties node, placer, dragger,
// and diffpair to one host board for the lifetime of an interactive
// routing session: wiring a world model from host-supplied configuration
// via functional options, as a single importable Session type rather than
// a pile of same-directory package main files.
//
// Session replaces the original singleton router (§9 design notes: "the
// singleton router instance is a deliberate simplification ... in a
// rewrite this becomes an explicit context passed into every algorithm").
// Every algorithm package here already takes its root *node.Node as an
// explicit constructor argument; Session is what a host event loop holds
// instead of reaching for a global, dispatching start/move/fix/undo/abort
// events to whichever one of placer/dragger/diffpair is currently open.
package router
