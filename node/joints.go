package node

import (
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/jointgraph"
)

// registerJoints adds it's endpoints to g: two joints for a segment/arc,
// one terminus joint for a via/solid/hole. termKeys is keyed per-node so a
// later unregisterJoints call on the same node (the only node that could
// have added it) can find the right key without recomputing geometry.
func (n *Node) registerJoints(g *joints, it item.Linked) {
	switch v := it.(type) {
	case *item.Segment:
		g.AddLink(v.UID(), v.Shape.A, v.Shape.B, v.Layers(), v.Net(), v.Width, false)
	case *item.Arc:
		g.AddLink(v.UID(), v.Shape.Start, v.Shape.End, v.Layers(), v.Net(), v.Shape.Width, true)
	case *item.Via:
		n.termKeys[v.UID()] = g.RegisterTerminus(v.UID(), v.Pos, v.Layers(), v.Net())
	case *item.Solid:
		n.termKeys[v.UID()] = g.RegisterTerminus(v.UID(), v.Rect.Center(), v.Layers(), v.Net())
	case *item.Hole:
		n.termKeys[v.UID()] = g.RegisterTerminus(v.UID(), v.Shape.Center, v.Layers(), v.Net())
	}
}

// unregisterJoints removes it's joint bookkeeping from whichever graph it
// was registered in (root graph or this node's add overlay; a branch
// removing an inherited parent item has no local joint entry to remove --
// the parent's joint stays, but the item's UID is filtered out of every
// effective query via overriddenChain).
func (n *Node) unregisterJoints(it item.Linked) {
	g := n.effectiveGraph()
	switch it.(type) {
	case *item.Segment, *item.Arc:
		g.RemoveLink(it.UID())
	case *item.Via, *item.Solid, *item.Hole:
		if key, ok := n.termKeys[it.UID()]; ok {
			g.UnregisterTerminus(it.UID(), key)
			delete(n.termKeys, it.UID())
		}
	}
}

// EffectiveNeighbors returns the linked-item UIDs incident at key as
// visible from n: the root graph's incidences plus every ancestor
// branch's own additions, minus anything overridden along the chain.
func (n *Node) EffectiveNeighbors(key jointgraph.JointKey, skip item.UID) []item.UID {
	masked := n.overriddenChain()
	seen := make(map[item.UID]struct{})
	var out []item.UID

	add := func(uid item.UID) {
		if uid == skip {
			return
		}
		if _, gone := masked[uid]; gone {
			return
		}
		if _, dup := seen[uid]; dup {
			return
		}
		seen[uid] = struct{}{}
		out = append(out, uid)
	}
	for _, uid := range n.Root().joints.NeighborLinks(key, skip) {
		add(uid)
	}
	for cur := n; cur != nil; cur = cur.parent {
		for _, uid := range cur.addGraph.NeighborLinks(key, skip) {
			add(uid)
		}
	}
	return out
}
