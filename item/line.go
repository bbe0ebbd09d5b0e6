package item

import "github.com/solderpath/pns/geom"

// Line is a transient logical track assembled on demand from linked items
// between two non-trivial joints. It is never stored in a node; it borrows
// its Links (back-references to the underlying Segment/Arc items that were
// concatenated to build it) and carries no UID of its own.
type Line struct {
	Base
	Chain Chain
	Width int64

	// EndVia is the via terminating this line, if any. ViaOwned reports
	// whether the via was created transiently during routing (and so
	// belongs to the Line until fixed into a node) or already belongs to a
	// node (Borrowed) -- see the ownership design note.
	EndVia   *Via
	ViaOwned bool

	Links []UID
}

func (l *Line) Kind() Kind { return KindLine }

// Chain is a thin alias for geom.Chain, so callers can name a line's chain
// type through this package; both name the same concrete type.
type Chain = geom.Chain

// ClearLinks detaches the line from its underlying items without affecting
// the node they live in (lines always borrow; clearing just drops the
// local back-references).
func (l *Line) ClearLinks() { l.Links = nil }

// LinkedConsistent reports whether the line's chain vertex count is
// compatible with having exactly len(Links) segments/arcs concatenated
// (a quick structural check; full UID-stability verification happens in
// the node that owns the links).
func (l *Line) LinkedConsistent() bool {
	if l.Chain.IsEmpty() {
		return len(l.Links) == 0
	}
	return len(l.Links) == l.Chain.Len()-1
}

// DpPrimitivePair names the four linked items a diff-pair placer discovers
// when the user starts a drag on a coupled anchor (§4.6
// DP_PRIMITIVE_PAIR).
type DpPrimitivePair struct {
	AnchorP, AnchorN Point
	PrimP, PrimN     Linked
}

// DiffPair couples two Lines (P and N nets) that must shove/walkaround
// together and maintain a configured gap.
type DiffPair struct {
	Base
	LineP, LineN Line
	Gap          int64
}

func (d *DiffPair) Kind() Kind { return KindDiffPair }

var _ Item = (*Line)(nil)
var _ Item = (*DiffPair)(nil)
