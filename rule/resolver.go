package rule

import "github.com/solderpath/pns/item"

// ConstraintKind enumerates the constraint families QueryConstraint can
// answer about a pair of items on a layer.
type ConstraintKind int

const (
	Clearance ConstraintKind = iota
	DiffPairGap
	DiffPairSkew
	Length
	Width
	ViaDiameter
	ViaHole
	HoleClearance
	EdgeClearance
	HoleToHole
	MaxUncoupled
	PhysicalClearance
)

// Constraint is the value QueryConstraint returns: a numeric limit plus
// whether it is a minimum or maximum bound.
type Constraint struct {
	Value int64
	IsMax bool // true if Value is an upper bound (length/skew), false for a floor (clearance/width)
}

// Polarity is a differential-pair net's role.
type Polarity int

const (
	PolarityNone Polarity = iota
	PolarityPositive
	PolarityNegative
)

// Resolver is the externally supplied clearance/keepout/diff-pair
// authority. The router core holds a single reference for the life of
// the world and calls it only from the router's own single thread (§5);
// implementations are not required to be goroutine-safe.
type Resolver interface {
	// Clearance returns the required clearance between a and b. If
	// useEpsilon is true the caller intends to treat "exactly at
	// clearance" as non-colliding and the resolver may shave its own
	// rounding epsilon off the returned value.
	Clearance(a, b item.Item, useEpsilon bool) int64

	// QueryConstraint answers a specific constraint kind for a pair of
	// items on a layer. ok is false if the resolver has no opinion (the
	// caller should fall back to a conservative default).
	QueryConstraint(kind ConstraintKind, a, b item.Item, layer int) (c Constraint, ok bool)

	// DpCoupledNet returns the complementary net of a diff-pair net, or
	// NoNet if net is not part of a pair.
	DpCoupledNet(net item.NetHandle) item.NetHandle

	// DpNetPolarity returns whether net is the P or N side of a pair.
	DpNetPolarity(net item.NetHandle) Polarity

	// DpNetPair returns the (P, N) net handles for the pair an item
	// belongs to.
	DpNetPair(it item.Item) (p, n item.NetHandle, ok bool)

	IsInNetTie(it item.Item) bool
	IsNetTieExclusion(a, b item.Item, contact item.Point) bool
	IsDrilledHole(it item.Item) bool
	IsNonPlatedSlot(it item.Item) bool
	IsKeepout(it item.Item, layer int) bool

	// ClearanceEpsilon is the tolerance used to decide whether two items
	// sitting exactly at the required clearance should be treated as
	// colliding (they should not, per the node's "-1" collision contract).
	ClearanceEpsilon() int64
}

// HullCache is an optional memoization hook a Resolver may additionally
// implement. The hull engine does not consult it: hull.For always computes
// the hull from scratch.
type HullCache interface {
	// CachedHull returns a previously computed hull chain for it at the
	// given clearance/width/layer, if the resolver has one on hand. The
	// returned chain may be shared by reference; callers must not mutate
	// it.
	CachedHull(it item.Item, clearance, walkaroundWidth int64, layer int) (chain item.Chain, ok bool)
}
