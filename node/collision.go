package node

import (
	"sort"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/rule"
)

// CollisionOptions narrows a QueryColliding/NearestObstacle/HitTest scan.
// The zero value matches every candidate item on every layer X occupies.
type CollisionOptions struct {
	// DifferentNetsOnly skips candidates sharing X's net (the common case:
	// a track never collides with its own net).
	DifferentNetsOnly bool

	// OverrideClearance, if non-nil, replaces the resolver's per-pair
	// clearance for every candidate instead of querying it individually.
	OverrideClearance *int64

	// LimitCount stops the scan after this many obstacles are found, 0
	// meaning unlimited. NearestObstacle honours it too and returns the
	// nearest of the obstacles found before the limit.
	LimitCount int

	// KindMask restricts candidates to the given item kinds; zero value
	// (no Set call) matches every kind.
	KindMask item.KindSet

	// UseClearanceEpsilon is forwarded to Resolver.Clearance so two items
	// sitting exactly at the required clearance are not reported as
	// colliding.
	UseClearanceEpsilon bool

	// Layer restricts the scan to one PNS layer instead of the union of
	// X's layer range.
	Layer *int

	// Filter, if non-nil, additionally excludes any candidate for which it
	// returns false.
	Filter func(item.Item) bool
}

// Obstacle is one hit from a collision scan: the colliding candidate, its
// shape-to-shape distance, and the clearance requirement it violated.
type Obstacle struct {
	Item      item.Linked
	Distance  float64
	Clearance int64
}

// candidateLayers returns the layers to scan: opts.Layer if set, else every
// layer in x's range.
func candidateLayers(x item.Item, opts CollisionOptions) []int {
	if opts.Layer != nil {
		return []int{*opts.Layer}
	}
	layers := x.Layers()
	out := make([]int, 0, layers.End-layers.Start+1)
	for l := layers.Start; l <= layers.End; l++ {
		out = append(out, l)
	}
	return out
}

// requiredClearance returns the clearance to enforce between x and
// candidate, honoring OverrideClearance.
func requiredClearance(resolver rule.Resolver, x, candidate item.Item, opts CollisionOptions) int64 {
	if opts.OverrideClearance != nil {
		return *opts.OverrideClearance
	}
	return resolver.Clearance(x, candidate, opts.UseClearanceEpsilon)
}

// collides implements the collision contract of §3: the shapes of x and
// candidate collide iff their distance is strictly less than clearance +
// halfWidth(x) + halfWidth(candidate) - 1.
func collides(resolver rule.Resolver, x, candidate item.Item, opts CollisionOptions) (dist float64, req int64, hit bool) {
	clearance := requiredClearance(resolver, x, candidate, opts)
	req = clearance + halfWidth(x) + halfWidth(candidate) - 1
	dist = shapeDistance(x, candidate)
	return dist, req, dist < float64(req)
}

func passesFilter(x, candidate item.Linked, opts CollisionOptions) bool {
	if candidate.UID() == x.UID() {
		return false
	}
	if !opts.KindMask.Has(candidate.Kind()) {
		return false
	}
	if opts.DifferentNetsOnly && candidate.Net() == x.Net() && candidate.Net() != item.NoNet {
		return false
	}
	if opts.Filter != nil && !opts.Filter(candidate) {
		return false
	}
	return true
}

// candidateUIDs returns every UID whose (inflated) bounding box may overlap
// box on layer: the root's spatial index, plus every branch level's own
// additions between n and the root, which are never inserted into the
// index -- only a root Add reaches idx.insert (node/mutate.go). A read
// query must consult a branch's local additions before falling through to
// the parent's index, per §4.1's branching contract, or a collision scan
// on a branch tip can never see that branch's own adds.
func (n *Node) candidateUIDs(box geom.Rect, layer int) map[item.UID]struct{} {
	out := n.Root().idx.query(box, layer)
	for cur := n; cur != nil && !cur.IsRoot(); cur = cur.parent {
		for uid, it := range cur.added {
			if !it.Layers().Contains(layer) {
				continue
			}
			if !boundingBox(it).Inflate(n.maxClearanceValue()).Intersects(box) {
				continue
			}
			out[uid] = struct{}{}
		}
	}
	return out
}

// QueryColliding scans every candidate whose inflated bounding box overlaps
// x's on a shared layer and returns every true collision, nearest first. x
// need not itself be stored in the node (used by drag/placer to test a
// transient candidate line before it is added).
func (n *Node) QueryColliding(x item.Linked, opts CollisionOptions) []Obstacle {
	box := boundingBox(x).Inflate(n.maxClearanceValue())

	seen := make(map[item.UID]struct{})
	var hits []Obstacle
	for _, layer := range candidateLayers(x, opts) {
		for uid := range n.candidateUIDs(box, layer) {
			if _, dup := seen[uid]; dup {
				continue
			}
			seen[uid] = struct{}{}
			candidate, ok := n.Lookup(uid)
			if !ok || !passesFilter(x, candidate, opts) {
				continue
			}
			dist, req, hit := collides(n.resolver, x, candidate, opts)
			if !hit {
				continue
			}
			hits = append(hits, Obstacle{Item: candidate, Distance: dist, Clearance: req})
			if opts.LimitCount > 0 && len(hits) >= opts.LimitCount {
				sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
				return hits
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// NearestObstacle returns the single closest colliding candidate, if any.
func (n *Node) NearestObstacle(x item.Linked, opts CollisionOptions) (Obstacle, bool) {
	hits := n.QueryColliding(x, opts)
	if len(hits) == 0 {
		return Obstacle{}, false
	}
	return hits[0], true
}

// HitTest returns every linked item whose shape contains p on the given
// layer, used by the placer to resolve a click into a start/end anchor.
func (n *Node) HitTest(p geom.Point, layer int) []item.Linked {
	box := geom.Rect{Min: p, Max: p}
	var out []item.Linked
	for uid := range n.candidateUIDs(box, layer) {
		candidate, ok := n.Lookup(uid)
		if !ok {
			continue
		}
		if hitTestShape(candidate, p) {
			out = append(out, candidate)
		}
	}
	return out
}

func hitTestShape(it item.Linked, p geom.Point) bool {
	if c, r, ok := asCircle(it); ok {
		return geom.Circle{Center: c, Radius: r}.Contains(p)
	}
	if s, ok := it.(*item.Solid); ok && s.Rect.Contains(p) {
		return true
	}
	for _, s := range asSegments(it) {
		if s.DistanceTo(p) <= float64(halfWidth(it)) {
			return true
		}
	}
	return false
}
