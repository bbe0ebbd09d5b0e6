package jointgraph

import (
	"fmt"

	"github.com/solderpath/pns/item"
)

// JointKey uniquely identifies a joint by (position, layer range, net).
// Invariant (spec §3 invariant 2): for each layer range x net x point there
// is at most one joint.
type JointKey string

// KeyFor computes the JointKey for a point/layers/net triple.
func KeyFor(p item.Point, layers item.LayerRange, net item.NetHandle) JointKey {
	return JointKey(fmt.Sprintf("%d,%d|%d-%d|%d", p.X, p.Y, layers.Start, layers.End, net))
}

// Joint is a topological meeting point of one or more linked items.
type Joint struct {
	Key    JointKey
	Pos    item.Point
	Layers item.LayerRange
	Net    item.NetHandle
	Locked bool

	// Items is the set of linked-item UIDs incident at this joint,
	// including vias/pads that terminate here without a second endpoint.
	Items map[item.UID]struct{}
}

func newJoint(key JointKey, p item.Point, layers item.LayerRange, net item.NetHandle) *Joint {
	return &Joint{Key: key, Pos: p, Layers: layers, Net: net, Items: make(map[item.UID]struct{})}
}

// Degree returns the number of linked items incident at the joint.
func (j *Joint) Degree() int { return len(j.Items) }

// Link is an edge of the joint graph: a segment or arc connecting two
// joints. UID is the underlying item's identity.
type Link struct {
	UID        item.UID
	From, To   JointKey
	Width      int64
	IsArc      bool
}
