package item

import "github.com/solderpath/pns/geom"

// ViaType distinguishes the physical via construction.
type ViaType int

const (
	ViaThrough ViaType = iota
	ViaBlind
	ViaBuried
	ViaMicro
)

// DiameterMode selects which of a Via's diameter fields (Normal,
// Front/Inner/Back, PerLayer) apply.
type DiameterMode int

const (
	// DiameterNormal: a single diameter applies to every layer the via
	// spans.
	DiameterNormal DiameterMode = iota
	// DiameterFrontInnerBack: distinct diameters for the front copper
	// layer, all inner layers, and the back copper layer.
	DiameterFrontInnerBack
	// DiameterCustom: a fully explicit per-layer diameter map.
	DiameterCustom
)

// UnconnectedLayerMode controls whether copper is removed from layers the
// via's net does not actually route through.
type UnconnectedLayerMode int

const (
	UnconnectedKeep UnconnectedLayerMode = iota
	UnconnectedRemove
	UnconnectedRemoveExceptStartEnd
)

// Via is a plated through-hole (or blind/buried/micro) connection between
// layers.
type Via struct {
	LinkedBase
	Pos Point

	Mode        DiameterMode
	Normal      int64         // used when Mode == DiameterNormal
	Front       int64         // used when Mode == DiameterFrontInnerBack
	Inner       int64         // used when Mode == DiameterFrontInnerBack
	Back        int64         // used when Mode == DiameterFrontInnerBack
	PerLayer    map[int]int64 // used when Mode == DiameterCustom

	Drill int64
	Type  ViaType

	Hole *Hole

	UnconnectedRemoval UnconnectedLayerMode
}

func (v *Via) Kind() Kind { return KindVia }

// DiameterOnLayer resolves the via's copper diameter for a given layer
// according to its DiameterMode.
func (v *Via) DiameterOnLayer(layer int) int64 {
	switch v.Mode {
	case DiameterFrontInnerBack:
		switch {
		case layer == v.Layers().Start:
			return v.Front
		case layer == v.Layers().End:
			return v.Back
		default:
			return v.Inner
		}
	case DiameterCustom:
		if d, ok := v.PerLayer[layer]; ok {
			return d
		}
		return v.Normal
	default:
		return v.Normal
	}
}

// CircleOnLayer returns the via's copper footprint on a layer as a circle.
func (v *Via) CircleOnLayer(layer int) geom.Circle {
	return geom.Circle{Center: geom.Pt(v.Pos.X, v.Pos.Y), Radius: v.DiameterOnLayer(layer) / 2}
}

// Point is a thin alias so Via.Pos reads naturally without importing geom
// in every call site that only touches X/Y.
type Point = geom.Point

// Pt constructs a Point without an explicit geom import.
func Pt(x, y int64) Point { return geom.Pt(x, y) }

// Hole is owned by a Via or Solid; it carries its own shape/layer range
// and is tested against other holes (ignoring nets) and against copper
// (hole-to-copper clearance) independently of its owner's copper shape.
type Hole struct {
	LinkedBase
	Shape     geom.Circle
	OwnerUID  UID
	OwnerKind Kind // KindVia or KindSolid
}

func (h *Hole) Kind() Kind { return KindHole }

var _ Linked = (*Via)(nil)
var _ Linked = (*Hole)(nil)
