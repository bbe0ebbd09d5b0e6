package node

import "github.com/solderpath/pns/item"

// isRedundant reports whether an item geometrically identical to it
// (same position/layer/net/geometry) already exists, for the linked kinds
// where that check applies (Segment, Arc).
func (n *Node) isRedundant(it item.Linked) bool {
	key := func(x item.Linked) (ok bool, a, b item.Point, layers item.LayerRange, net item.NetHandle, width int64) {
		switch v := x.(type) {
		case *item.Segment:
			return true, v.Shape.A, v.Shape.B, v.Layers(), v.Net(), v.Width
		case *item.Arc:
			return true, v.Shape.Start, v.Shape.End, v.Layers(), v.Net(), v.Shape.Width
		default:
			return false, item.Point{}, item.Point{}, item.LayerRange{}, 0, 0
		}
	}
	ok, a, b, layers, net, width := key(it)
	if !ok {
		return false
	}
	for _, existing := range n.AllItems() {
		ok2, a2, b2, layers2, net2, width2 := key(existing)
		if !ok2 || layers2 != layers || net2 != net || width2 != width {
			continue
		}
		if (a2 == a && b2 == b) || (a2 == b && b2 == a) {
			return true
		}
	}
	return false
}

// Add inserts it into the node, rebuilds affected joints, and returns
// false if a redundant segment/arc already exists and allowRedundant is
// false. Ownership of it transfers into the node.
func (n *Node) Add(it item.Linked, allowRedundant bool) (bool, error) {
	if !allowRedundant && n.isRedundant(it) {
		return false, nil
	}

	n.registerJoints(n.effectiveGraph(), it)

	if n.IsRoot() {
		box := boundingBox(it)
		n.items[it.UID()] = it
		n.idx.insert(it.UID(), box.Inflate(n.maxClearanceValue()), it.Layers())
	} else {
		delete(n.overrides, it.UID())
		n.added[it.UID()] = it
	}
	return true, nil
}

// effectiveGraph returns the joint graph this node mutates on Add: the
// root's canonical graph for a root node, or this branch's own add-overlay
// graph otherwise.
func (n *Node) effectiveGraph() *joints {
	if n.IsRoot() {
		return n.joints
	}
	return n.addGraph
}

// Remove deletes it from the node's view: on the root it frees
// immediately; on a branch it is recorded in the override set and garbage
// bin so outstanding line assembly referencing it stays valid until
// commit or teardown.
func (n *Node) Remove(it item.Linked) error {
	if !n.Has(it.UID()) {
		return ErrUnknownItem
	}
	n.unregisterJoints(it)

	if n.IsRoot() {
		delete(n.items, it.UID())
		n.idx.remove(it.UID())
		return nil
	}
	n.overrides[it.UID()] = struct{}{}
	n.garbage[it.UID()] = it
	delete(n.added, it.UID())
	return nil
}
