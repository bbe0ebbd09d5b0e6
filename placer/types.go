package placer

import (
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/logger"
	"github.com/solderpath/pns/rule"
)

// Mode selects which collision-resolution strategy Move drives the head
// through.
type Mode int

const (
	// ModeMarkObstacles never deflects the head; colliding obstacles are
	// left in place and the head is flagged as violating.
	ModeMarkObstacles Mode = iota
	// ModeWalkaround detours the head around obstacles without moving
	// them.
	ModeWalkaround
	// ModeShove pushes obstacles out of the head's way; falls back to
	// ModeWalkaround, then ModeMarkObstacles, on failure.
	ModeShove
)

// String renders the mode for logs and test failure messages.
func (m Mode) String() string {
	switch m {
	case ModeMarkObstacles:
		return "mark-obstacles"
	case ModeWalkaround:
		return "walkaround"
	case ModeShove:
		return "shove"
	default:
		return "unknown"
	}
}

// State is the placer's interaction state per §4.5: START -> ROUTE ->
// FINISH.
type State int

const (
	StateStart State = iota
	StateRoute
	StateFinish
)

// String renders the state for logs and test failure messages.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateRoute:
		return "route"
	case StateFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Options configures a Placer. Sizes, Layer, and Net describe the trace
// being routed; Mode selects the collision-resolution strategy; Diag
// attaches an operational tracer.
type Options struct {
	Mode          Mode
	Sizes         rule.Sizes
	Layer         int
	Net           item.NetHandle
	CanViolateDRC bool
	Diag          logger.Diag
}

// Option mutates an Options value.
type Option func(*Options)

// WithMode overrides the default collision-resolution mode (ModeShove).
func WithMode(m Mode) Option { return func(o *Options) { o.Mode = m } }

// WithSizes attaches the active track-size configuration.
func WithSizes(s rule.Sizes) Option { return func(o *Options) { o.Sizes = s } }

// WithLayer sets the PNS layer the route is placed on.
func WithLayer(layer int) Option { return func(o *Options) { o.Layer = layer } }

// WithNet sets the net handle the route belongs to.
func WithNet(net item.NetHandle) Option { return func(o *Options) { o.Net = net } }

// WithCanViolateDRC allows FixRoute to commit a colliding route instead of
// rejecting it, per §7's FixRoute DRC-override policy.
func WithCanViolateDRC(v bool) Option { return func(o *Options) { o.CanViolateDRC = v } }

// WithDiag attaches an operational tracer.
func WithDiag(d logger.Diag) Option { return func(o *Options) { o.Diag = d } }

func defaultOptions() Options {
	return Options{Mode: ModeShove}
}
