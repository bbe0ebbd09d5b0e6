package router

import (
	"github.com/solderpath/pns/dragger"
	"github.com/solderpath/pns/iface"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/logger"
	"github.com/solderpath/pns/placer"
	"github.com/solderpath/pns/rule"
)

// Kind identifies which interaction, if any, a Session currently has
// open. Only one is ever open at a time.
type Kind int

const (
	KindNone Kind = iota
	KindRoute
	KindDrag
	KindMultiDrag
	KindDiffPair
)

// String renders the kind for logs and UI state labels.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRoute:
		return "route"
	case KindDrag:
		return "drag"
	case KindMultiDrag:
		return "multi-drag"
	case KindDiffPair:
		return "diff-pair"
	default:
		return "unknown"
	}
}

// Settings is the host-supplied configuration snapshot (§6 "Sizes
// configuration") a Session applies to every interaction it opens. Net is
// the single-net handle for StartRoute/StartDrag; NetP/NetN are the
// coupled pair for StartDiffPair.
type Settings struct {
	Mode          placer.Mode
	Sizes         rule.Sizes
	Layer         int
	Net           item.NetHandle
	NetP, NetN    item.NetHandle
	CanViolateDRC bool
}

// dragCollisionMode maps the session-wide placer.Mode onto dragger's own
// CollisionMode, which mirrors placer.Mode's three strategies without
// importing placer (dragger's doc.go explains why).
func dragCollisionMode(m placer.Mode) dragger.CollisionMode {
	switch m {
	case placer.ModeWalkaround:
		return dragger.CollisionWalkaround
	case placer.ModeMarkObstacles:
		return dragger.CollisionMarkObstacles
	default:
		return dragger.CollisionShove
	}
}

// Option mutates a Session at construction time.
type Option func(*Session)

// WithReplayLogger attaches the optional append-only replay sink (§6
// Logger) events are recorded to.
func WithReplayLogger(l iface.Logger) Option { return func(s *Session) { s.replay = l } }

// WithDiag attaches the internal operational tracer every sub-package
// Options also accepts, so shove/walkaround/meander diagnostics from
// inside a session-driven interaction all land on the same sink.
func WithDiag(d logger.Diag) Option { return func(s *Session) { s.diag = d } }
