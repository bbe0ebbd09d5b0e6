package node

import "github.com/solderpath/pns/item"

// overriddenChain returns the union of UIDs masked out by this node and
// every ancestor between it and the root (exclusive of the root, which
// never masks -- removals on the root free immediately instead of
// recording an override).
func (n *Node) overriddenChain() map[item.UID]struct{} {
	out := make(map[item.UID]struct{})
	for cur := n; cur != nil && !cur.IsRoot(); cur = cur.parent {
		for uid := range cur.overrides {
			out[uid] = struct{}{}
		}
	}
	return out
}

// Lookup returns the item with the given UID as visible from n: local
// additions first, then an ancestor walk, masking anything overridden
// along the way.
func (n *Node) Lookup(uid item.UID) (item.Linked, bool) {
	masked := n.overriddenChain()
	if _, gone := masked[uid]; gone {
		return nil, false
	}
	for cur := n; cur != nil; cur = cur.parent {
		if it, ok := cur.added[uid]; ok {
			return it, true
		}
		if cur.IsRoot() {
			if it, ok := cur.items[uid]; ok {
				return it, true
			}
		}
	}
	return nil, false
}

// Has reports whether uid is visible (and not masked) from n.
func (n *Node) Has(uid item.UID) bool {
	_, ok := n.Lookup(uid)
	return ok
}

// AllItems returns every item visible from n (root storage minus
// overrides, plus every branch level's own additions from root down to
// n). Used by isRedundant.
func (n *Node) AllItems() map[item.UID]item.Linked {
	out := make(map[item.UID]item.Linked)
	root := n.Root()
	for uid, it := range root.items {
		out[uid] = it
	}
	// Walk root -> n applying each level's overrides then additions, so a
	// later branch's add wins over an earlier branch's remove of the same
	// UID (replacement semantics).
	var chain []*Node
	for cur := n; cur != nil; cur = cur.parent {
		chain = append([]*Node{cur}, chain...)
	}
	for _, cur := range chain {
		for uid := range cur.overrides {
			delete(out, uid)
		}
		for uid, it := range cur.added {
			out[uid] = it
		}
	}
	return out
}
