// Package geom provides the integer 2D geometry primitives the router core
// is built on: points, vectors, segments, arcs, circles, axis-aligned
// rectangles, and line chains (polylines with arc-aware vertices).
//
// All coordinates are signed 64-bit integers in internal units (nanometres
// typical for a PCB design). There is no floating-point coordinate type;
// intermediate trigonometry (arc sampling, hull chamfers) uses float64 and
// rounds back to int64 at the boundary.
//
// Complexity is noted per function where it is not O(1).
package geom
