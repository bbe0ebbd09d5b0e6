package item

import "github.com/google/uuid"

// UID is the unique identifier every linked item carries. It is minted
// from github.com/google/uuid rather than an in-process counter because
// linked items must keep a stable identity across Branch/Commit replay
// against an external host board (§3: "a line is linked-consistent iff
// ... its UID is stable"), which a monotonic counter scoped to one process
// could not guarantee against a host board's own identity space.
type UID uuid.UUID

// NewUID mints a fresh random UID.
func NewUID() UID { return UID(uuid.New()) }

// Nil is the zero UID, used for unlinked/transient items (Line, DiffPair).
var Nil UID

// String renders the UID for logs and error messages.
func (u UID) String() string { return uuid.UUID(u).String() }

// NetHandle is an opaque net identifier; equality is the only operation the
// router core performs on it directly; everything else (name, DP
// coupling) is resolved through the external rule resolver / board
// adapter.
type NetHandle int64

// NoNet is the handle for unconnected/net-less items (most Hole owners
// still share a net with their parent via/pad; truly net-less items use
// NoNet).
const NoNet NetHandle = 0

// LayerRange is a contiguous, inclusive layer span [Start, End].
type LayerRange struct {
	Start, End int
}

// SingleLayer returns a LayerRange covering exactly one layer.
func SingleLayer(l int) LayerRange { return LayerRange{Start: l, End: l} }

// Overlaps reports whether two layer ranges share at least one layer.
func (r LayerRange) Overlaps(o LayerRange) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Contains reports whether layer l falls within r.
func (r LayerRange) Contains(l int) bool { return l >= r.Start && l <= r.End }

// IsMultiLayer reports whether the range spans more than one layer (a via
// spanning layers, as opposed to a copper item pinned to one layer).
func (r LayerRange) IsMultiLayer() bool { return r.End > r.Start }
