package item

import "github.com/solderpath/pns/geom"

// Item is implemented by every routable variant. Concrete dispatch is by
// Kind() plus a type switch at the call site; Item itself stays small.
type Item interface {
	Kind() Kind
	Layers() LayerRange
	Net() NetHandle
	Markers() Markers
	SetMarkers(Markers)
	Rank() int
	SetRank(int)
	Virtual() bool
	Routable() bool
	HostRef() any
}

// Linked is the subset of Item that additionally carries a stable UID
// (Segment, Arc, Via, Solid, Hole).
type Linked interface {
	Item
	UID() UID
}

// Base holds the attributes shared by every item variant. Concrete types
// embed Base and get Item's common methods for free.
type Base struct {
	layers   LayerRange
	net      NetHandle
	markers  Markers
	rank     int
	virtual  bool
	routable bool

	// hostRef is an opaque reference to the host application's board
	// object backing this item, used only to pair an "added" item with a
	// "removed" item sharing the same host origin into a single UpdateItem
	// call at commit time (§4.1 commit ordering). The router core never
	// dereferences it.
	hostRef any
}

// NewBase constructs a Base with the given layers/net; Rank defaults to 0
// (easiest to push), Routable defaults to true.
func NewBase(layers LayerRange, net NetHandle) Base {
	return Base{layers: layers, net: net, routable: true}
}

func (b Base) Layers() LayerRange     { return b.layers }
func (b Base) Net() NetHandle         { return b.net }
func (b Base) Markers() Markers       { return b.markers }
func (b *Base) SetMarkers(m Markers)  { b.markers = m }
func (b Base) Rank() int              { return b.rank }
func (b *Base) SetRank(r int)         { b.rank = r }
func (b Base) Virtual() bool          { return b.virtual }
func (b *Base) SetVirtual(v bool)     { b.virtual = v }
func (b Base) Routable() bool         { return b.routable }
func (b *Base) SetRoutable(r bool)    { b.routable = r }
func (b *Base) SetLayers(l LayerRange) { b.layers = l }
func (b *Base) SetNet(n NetHandle)    { b.net = n }
func (b Base) HostRef() any           { return b.hostRef }
func (b *Base) SetHostRef(ref any)    { b.hostRef = ref }

// LinkedBase additionally carries the stable UID every linked item
// needs for joint/line bookkeeping.
type LinkedBase struct {
	Base
	uid UID
}

// NewLinkedBase constructs a LinkedBase with a freshly minted UID.
func NewLinkedBase(layers LayerRange, net NetHandle) LinkedBase {
	return LinkedBase{Base: NewBase(layers, net), uid: NewUID()}
}

func (b LinkedBase) UID() UID { return b.uid }

// Segment is a straight copper trace.
type Segment struct {
	LinkedBase
	Shape geom.Segment
	Width int64
}

func (s *Segment) Kind() Kind { return KindSegment }

// Arc is a curved copper trace.
type Arc struct {
	LinkedBase
	Shape geom.Arc
}

func (a *Arc) Kind() Kind { return KindArc }

// Solid is a pad or other fixed-shape copper item (footprint pad, zone
// fill fragment presented as an obstacle, edge-cut keepout proxy, etc).
type Solid struct {
	LinkedBase
	Rect      geom.Rect // axis-aligned bounding shape; compound pads use Rect as their hull seed
	Circle    *geom.Circle
	IsKeepout bool
}

func (s *Solid) Kind() Kind { return KindSolid }

var _ Linked = (*Segment)(nil)
var _ Linked = (*Arc)(nil)
var _ Linked = (*Solid)(nil)
