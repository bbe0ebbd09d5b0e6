package node

import (
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/jointgraph"
	"github.com/solderpath/pns/rule"
)

// Node is a branchable snapshot of the routable world.
// The root node owns the canonical item storage, spatial index, and joint
// graph; a branch created with Branch only records an override set
// (items masked because this branch replaced or removed them), its own
// additions, and a garbage bin of removed items kept alive until commit or
// teardown so outstanding line assembly referencing them stays safe.
type Node struct {
	parent   *Node
	children map[*Node]struct{}
	depth    int

	resolver rule.Resolver

	// Root-only storage. nil on branch nodes.
	items  map[item.UID]item.Linked
	idx    *index
	joints *joints

	// Branch-local overlay. Always non-nil; at the root, termKeys also
	// records the joint keys of root items.
	added     map[item.UID]item.Linked
	overrides map[item.UID]struct{}
	garbage   map[item.UID]item.Linked
	addGraph  *joints
	termKeys  map[item.UID]jointgraph.JointKey

	maxClearance int64
}

// joints is an alias for the joint-graph backing type, kept short because
// it appears in nearly every method signature in this package.
type joints = jointgraph.Graph

// NewRoot creates a new root node backed by its own storage.
func NewRoot(resolver rule.Resolver) *Node {
	return &Node{
		children:  make(map[*Node]struct{}),
		resolver:  resolver,
		items:     make(map[item.UID]item.Linked),
		idx:       newIndex(),
		joints:    jointgraph.New(),
		added:     make(map[item.UID]item.Linked),
		overrides: make(map[item.UID]struct{}),
		garbage:   make(map[item.UID]item.Linked),
		addGraph:  jointgraph.New(),
		termKeys:  make(map[item.UID]jointgraph.JointKey),
	}
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Root walks up to the ultimate ancestor.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the branch depth (0 for root); depth is strictly greater
// than the parent's, per the node invariant.
func (n *Node) Depth() int { return n.depth }

// SetMaxClearance records the largest clearance value the caller expects
// to query with, so the spatial index inflates its buckets enough to
// never miss a true collision candidate. No placer or
// dragger in this module calls it.
func (n *Node) SetMaxClearance(c int64) { n.Root().maxClearance = c }

func (n *Node) maxClearanceValue() int64 {
	if n.Root().maxClearance > 0 {
		return n.Root().maxClearance
	}
	return defaultCellSize
}

// Resolver returns the rule resolver this node's world was built against.
func (n *Node) Resolver() rule.Resolver { return n.resolver }
