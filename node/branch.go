package node

import (
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/jointgraph"
)

// Branch allocates a child node with empty override/add sets. The parent
// must outlive the child (the child holds a raw pointer back).
func (n *Node) Branch() *Node {
	child := &Node{
		parent:    n,
		depth:     n.depth + 1,
		children:  make(map[*Node]struct{}),
		resolver:  n.resolver,
		added:     make(map[item.UID]item.Linked),
		overrides: make(map[item.UID]struct{}),
		garbage:   make(map[item.UID]item.Linked),
		addGraph:  jointgraph.New(),
		termKeys:  make(map[item.UID]jointgraph.JointKey),
	}
	n.children[child] = struct{}{}
	return child
}

// KillChildren discards every branch rooted at n (used on interaction
// abort: the event source's "abort" kills every child of root, per §5
// cancellation semantics).
func (n *Node) KillChildren() {
	for c := range n.children {
		c.KillChildren()
		delete(n.children, c)
	}
}

// Kill detaches n from its parent's child set, discarding its overlay.
// Used when a shove/walkaround attempt is abandoned mid-interaction.
func (n *Node) Kill() {
	if n.parent == nil {
		return
	}
	n.KillChildren()
	delete(n.parent.children, n)
}
