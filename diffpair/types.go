package diffpair

import (
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/logger"
	"github.com/solderpath/pns/placer"
	"github.com/solderpath/pns/rule"
)

// Mode and State are placer's, reused directly: a coupled pair resolves
// collisions through the same three-strategy cascade and passes through
// the same three-state interaction as a single line.
type Mode = placer.Mode
type State = placer.State

const (
	ModeMarkObstacles = placer.ModeMarkObstacles
	ModeWalkaround    = placer.ModeWalkaround
	ModeShove         = placer.ModeShove

	StateStart  = placer.StateStart
	StateRoute  = placer.StateRoute
	StateFinish = placer.StateFinish
)

// gapTolerance is the +-10% band Start checks the anchor spacing against
// (§4.6).
const gapTolerance = 0.10

// Options configures a Placer.
type Options struct {
	Mode          Mode
	Sizes         rule.Sizes
	Layer         int
	NetP, NetN    item.NetHandle
	CanViolateDRC bool
	Diag          logger.Diag
}

// Option mutates an Options value.
type Option func(*Options)

func WithMode(m Mode) Option               { return func(o *Options) { o.Mode = m } }
func WithSizes(s rule.Sizes) Option        { return func(o *Options) { o.Sizes = s } }
func WithLayer(layer int) Option           { return func(o *Options) { o.Layer = layer } }
func WithNets(p, n item.NetHandle) Option  { return func(o *Options) { o.NetP, o.NetN = p, n } }
func WithCanViolateDRC(v bool) Option      { return func(o *Options) { o.CanViolateDRC = v } }
func WithDiag(d logger.Diag) Option        { return func(o *Options) { o.Diag = d } }

func defaultOptions() Options {
	return Options{Mode: ModeShove}
}
