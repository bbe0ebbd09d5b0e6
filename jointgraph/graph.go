package jointgraph

import (
	"sync"

	"github.com/solderpath/pns/item"
)

// Graph is the joint/link catalog. muJoint guards joints; muLink guards
// links and adjacency -- separate locks per concern so a joint lookup
// never blocks on an unrelated link mutation.
type Graph struct {
	muJoint sync.RWMutex
	muLink  sync.RWMutex

	joints map[JointKey]*Joint
	links  map[item.UID]*Link

	// adjacency[key][otherKey][linkUID] = struct{}{}
	adjacency map[JointKey]map[JointKey]map[item.UID]struct{}
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		joints:    make(map[JointKey]*Joint),
		links:     make(map[item.UID]*Link),
		adjacency: make(map[JointKey]map[JointKey]map[item.UID]struct{}),
	}
}

// ensureJoint returns the joint at key, creating it if absent.
func (g *Graph) ensureJoint(key JointKey, p item.Point, layers item.LayerRange, net item.NetHandle) *Joint {
	j, ok := g.joints[key]
	if !ok {
		j = newJoint(key, p, layers, net)
		g.joints[key] = j
		g.adjacency[key] = make(map[JointKey]map[item.UID]struct{})
	}
	return j
}

// Joint returns the joint at key, if any. Complexity O(1).
func (g *Graph) Joint(key JointKey) (*Joint, bool) {
	g.muJoint.RLock()
	defer g.muJoint.RUnlock()
	j, ok := g.joints[key]
	return j, ok
}

// RegisterTerminus adds uid as incident at the joint (p, layers, net)
// without creating a link edge -- used by vias, pads, and holes, which
// terminate at a joint rather than connecting two of them.
func (g *Graph) RegisterTerminus(uid item.UID, p item.Point, layers item.LayerRange, net item.NetHandle) JointKey {
	g.muJoint.Lock()
	defer g.muJoint.Unlock()
	key := KeyFor(p, layers, net)
	j := g.ensureJoint(key, p, layers, net)
	j.Items[uid] = struct{}{}
	return key
}

// UnregisterTerminus removes uid's incidence at key, pruning the joint if
// it becomes empty.
func (g *Graph) UnregisterTerminus(uid item.UID, key JointKey) {
	g.muJoint.Lock()
	defer g.muJoint.Unlock()
	j, ok := g.joints[key]
	if !ok {
		return
	}
	delete(j.Items, uid)
	if len(j.Items) == 0 && len(g.adjacency[key]) == 0 {
		delete(g.joints, key)
		delete(g.adjacency, key)
	}
}

// AddLink registers a segment/arc as an edge between two joints, creating
// the joints if needed. Complexity O(1) amortized.
func (g *Graph) AddLink(uid item.UID, a, b item.Point, layers item.LayerRange, net item.NetHandle, width int64, isArc bool) (from, to JointKey) {
	g.muJoint.Lock()
	from = KeyFor(a, layers, net)
	to = KeyFor(b, layers, net)
	jf := g.ensureJoint(from, a, layers, net)
	jt := g.ensureJoint(to, b, layers, net)
	jf.Items[uid] = struct{}{}
	jt.Items[uid] = struct{}{}
	g.muJoint.Unlock()

	g.muLink.Lock()
	defer g.muLink.Unlock()
	g.links[uid] = &Link{UID: uid, From: from, To: to, Width: width, IsArc: isArc}
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[JointKey]map[item.UID]struct{})
	}
	if g.adjacency[to] == nil {
		g.adjacency[to] = make(map[JointKey]map[item.UID]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[item.UID]struct{})
	}
	if g.adjacency[to][from] == nil {
		g.adjacency[to][from] = make(map[item.UID]struct{})
	}
	g.adjacency[from][to][uid] = struct{}{}
	g.adjacency[to][from][uid] = struct{}{}
	return from, to
}

// RemoveLink removes a segment/arc edge, pruning empty joints.
func (g *Graph) RemoveLink(uid item.UID) {
	g.muLink.Lock()
	l, ok := g.links[uid]
	if !ok {
		g.muLink.Unlock()
		return
	}
	delete(g.links, uid)
	if adj, ok := g.adjacency[l.From]; ok {
		delete(adj, l.To)
	}
	if adj, ok := g.adjacency[l.To]; ok {
		delete(adj, l.From)
	}
	g.muLink.Unlock()

	g.muJoint.Lock()
	defer g.muJoint.Unlock()
	if j, ok := g.joints[l.From]; ok {
		delete(j.Items, uid)
		if len(j.Items) == 0 && len(g.adjacency[l.From]) == 0 {
			delete(g.joints, l.From)
			delete(g.adjacency, l.From)
		}
	}
	if j, ok := g.joints[l.To]; ok {
		delete(j.Items, uid)
		if len(j.Items) == 0 && len(g.adjacency[l.To]) == 0 {
			delete(g.joints, l.To)
			delete(g.adjacency, l.To)
		}
	}
}

// Link returns the link for uid, if any.
func (g *Graph) Link(uid item.UID) (*Link, bool) {
	g.muLink.RLock()
	defer g.muLink.RUnlock()
	l, ok := g.links[uid]
	return l, ok
}

// NeighborLinks returns the link UIDs incident at key other than skip.
func (g *Graph) NeighborLinks(key JointKey, skip item.UID) []item.UID {
	g.muJoint.RLock()
	j, ok := g.joints[key]
	g.muJoint.RUnlock()
	if !ok {
		return nil
	}
	out := make([]item.UID, 0, len(j.Items))
	for uid := range j.Items {
		if uid != skip {
			out = append(out, uid)
		}
	}
	return out
}

// CloneEmpty returns a new Graph with no joints or links; used when a node
// branch wants a completely separate joint-graph namespace (the root node
// always owns the canonical Graph; branches instead use Node's override
// layer, but CloneEmpty is provided for tests and for the rare case of a
// fully detached what-if world).
func (g *Graph) CloneEmpty() *Graph { return New() }
