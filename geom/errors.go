package geom

import "errors"

// Sentinel errors for geom constructors and queries.
var (
	// ErrDegenerateArc indicates start/mid/end could not describe a valid arc.
	ErrDegenerateArc = errors.New("geom: degenerate arc (collinear or coincident points)")

	// ErrEmptyChain indicates an operation requires at least one vertex.
	ErrEmptyChain = errors.New("geom: line chain has no vertices")

	// ErrIndexOutOfRange indicates a chain vertex/arc index was out of bounds.
	ErrIndexOutOfRange = errors.New("geom: index out of range")

	// ErrNoSplitPoint indicates Split was asked for a point not on the chain.
	ErrNoSplitPoint = errors.New("geom: split point does not lie on the chain")
)
