package node

import (
	"github.com/solderpath/pns/iface"
	"github.com/solderpath/pns/item"
)

// delta is the minimal added/removed/changed partition Commit computes
// before replaying it through the host board adapter.
type delta struct {
	added   []item.Linked
	removed []item.Linked
	changed []changedPair
}

type changedPair struct {
	old, new item.Linked
}

// computeDelta walks child's overrides (removed) and additions (added),
// pairing an added item with a removed item when they share a non-nil
// HostRef (the same host board object), producing a "changed" entry
// instead of a separate remove+add, per §4.1 commit ordering step 1.
func computeDelta(child *Node) delta {
	removedByRef := make(map[any]item.Linked)
	var removedNoRef []item.Linked
	for uid := range child.overrides {
		it, ok := child.garbage[uid]
		if !ok {
			continue
		}
		if ref := it.HostRef(); ref != nil {
			removedByRef[ref] = it
		} else {
			removedNoRef = append(removedNoRef, it)
		}
	}

	var d delta
	for _, it := range child.added {
		ref := it.HostRef()
		if ref != nil {
			if old, ok := removedByRef[ref]; ok {
				d.changed = append(d.changed, changedPair{old: old, new: it})
				delete(removedByRef, ref)
				continue
			}
		}
		d.added = append(d.added, it)
	}
	for _, it := range removedByRef {
		d.removed = append(d.removed, it)
	}
	d.removed = append(d.removed, removedNoRef...)
	return d
}

// Commit is legal only for a child of the root. It computes the delta,
// pushes it through the host board adapter, then grafts the child's
// overlay into the root and kills every sibling branch.
func (n *Node) Commit(child *Node, board iface.Board) error {
	if !n.IsRoot() || child.parent != n {
		return ErrCommitDeniedNotRoot
	}

	d := computeDelta(child)
	for _, it := range d.removed {
		if err := board.RemoveItem(it); err != nil {
			return err
		}
	}
	for _, it := range d.added {
		if err := board.AddItem(it); err != nil {
			return err
		}
	}
	for _, pair := range d.changed {
		if err := board.UpdateItem(pair.old, pair.new); err != nil {
			return err
		}
	}
	if err := board.Commit(); err != nil {
		return err
	}

	n.graft(child)

	for sibling := range n.children {
		if sibling != child {
			sibling.KillChildren()
		}
	}
	n.children = make(map[*Node]struct{})
	return nil
}

// graft integrates child's additions/removals into n's root storage and
// joint graph, as the final step of Commit.
func (n *Node) graft(child *Node) {
	for uid := range child.overrides {
		delete(n.items, uid)
		n.idx.remove(uid)
	}
	for uid, it := range child.added {
		box := boundingBox(it)
		n.items[uid] = it
		n.idx.insert(uid, box.Inflate(n.maxClearanceValue()), it.Layers())
	}
	// Re-register joints for added items directly into the root graph
	// (they were only recorded in child.addGraph during the branch's
	// lifetime); removed items' joints are pruned by unregistering them.
	for _, it := range child.garbage {
		n.unregisterFromRoot(it)
	}
	for _, it := range child.added {
		n.registerJoints(n.joints, it)
	}
}

func (n *Node) unregisterFromRoot(it item.Linked) {
	switch it.Kind() {
	case item.KindSegment, item.KindArc:
		n.joints.RemoveLink(it.UID())
	default:
		// Vias/solids/holes: the terminus key was recorded on the root at
		// original Add time (the item came from root storage), so the
		// root's own termKeys map has it.
		if key, ok := n.termKeys[it.UID()]; ok {
			n.joints.UnregisterTerminus(it.UID(), key)
			delete(n.termKeys, it.UID())
		}
	}
}
