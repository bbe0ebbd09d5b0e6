package node

// Flatten collapses every branch level between n and descendant into a
// single new direct child of n, carrying their cumulative net effect
// (the same root->descendant chain walk Lookup/AllItems use to resolve
// visibility). Commit only accepts a direct child of the root (§7
// CommitDeniedNotRoot is a deliberate assert, not something to relax) but
// a placer/dragger/diffpair interaction routinely branches several levels
// deep -- one more level per accepted shove attempt across a sequence of
// Move calls. Flatten is how a caller bridges that gap: flatten, then
// Commit the result; Commit's own sibling cleanup discards the original
// chain along with every other stale branch off n.
func (n *Node) Flatten(descendant *Node) *Node {
	var chain []*Node
	for cur := descendant; cur != nil && cur != n; cur = cur.parent {
		chain = append([]*Node{cur}, chain...)
	}

	flat := n.Branch()
	for _, cur := range chain {
		for uid := range cur.overrides {
			delete(flat.added, uid)
			flat.overrides[uid] = struct{}{}
			if it, ok := cur.garbage[uid]; ok {
				flat.garbage[uid] = it
			}
		}
		for uid, it := range cur.added {
			delete(flat.overrides, uid)
			flat.added[uid] = it
		}
	}
	return flat
}
