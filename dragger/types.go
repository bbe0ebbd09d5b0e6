package dragger

import (
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/logger"
	"github.com/solderpath/pns/rule"
)

// Mode selects which part of a line the drag grabs, or whether the seed is
// a via.
type Mode int

const (
	// ModeVia drags a Via's position directly.
	ModeVia Mode = iota
	// ModeCorner drags a single line vertex, constrained by its
	// neighbour; Start selects it for a line's first or last vertex.
	ModeCorner
	// ModeSegment drags an interior segment perpendicular to its own
	// direction, carrying both its endpoints.
	ModeSegment
)

// String renders the mode for logs and test failure messages.
func (m Mode) String() string {
	switch m {
	case ModeVia:
		return "via"
	case ModeCorner:
		return "corner"
	case ModeSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// AngleConstraint controls how the dragged geometry is snapped to the
// cursor.
type AngleConstraint int

const (
	// Angle45 snaps the dragged vertex to the nearest 45-degree octant
	// measured from its fixed neighbour.
	Angle45 AngleConstraint = iota
	// AngleFree follows the cursor exactly.
	AngleFree
)

// CollisionMode mirrors placer.Mode without importing placer (dragger is
// grounded on placer's dispatch shape, not its package).
type CollisionMode int

const (
	CollisionMarkObstacles CollisionMode = iota
	CollisionWalkaround
	CollisionShove
)

// Options configures a Dragger.
type Options struct {
	Angle         AngleConstraint
	Collision     CollisionMode
	Sizes         rule.Sizes
	Layer         int
	Net           item.NetHandle
	CanViolateDRC bool
	Diag          logger.Diag
}

// Option mutates an Options value.
type Option func(*Options)

func WithAngle(a AngleConstraint) Option      { return func(o *Options) { o.Angle = a } }
func WithCollisionMode(c CollisionMode) Option { return func(o *Options) { o.Collision = c } }
func WithSizes(s rule.Sizes) Option            { return func(o *Options) { o.Sizes = s } }
func WithLayer(layer int) Option               { return func(o *Options) { o.Layer = layer } }
func WithNet(net item.NetHandle) Option        { return func(o *Options) { o.Net = net } }
func WithCanViolateDRC(v bool) Option           { return func(o *Options) { o.CanViolateDRC = v } }
func WithDiag(d logger.Diag) Option             { return func(o *Options) { o.Diag = d } }

func defaultOptions() Options {
	return Options{Collision: CollisionShove}
}
