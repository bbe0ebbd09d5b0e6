package shove

import (
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/logger"
)

// State is the outcome of one Propagate call, per §4.4's IDLE -> PROPAGATE
// -> {STABLE, ITER_LIMIT, FAIL} state machine.
type State int

const (
	StateIdle State = iota
	StatePropagate
	StateStable
	StateIterLimit
	StateFail
)

// String renders the state for logs and test failure messages.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePropagate:
		return "propagate"
	case StateStable:
		return "stable"
	case StateIterLimit:
		return "iter-limit"
	case StateFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Result is what Propagate returns: the terminal state, the round count it
// took to get there, and every item that ended up moved (in application
// order, so a caller can replay or roll back).
type Result struct {
	State   State
	Rounds  int
	Shifted []item.Linked
}

// Options configures a Propagate call via functional options, mirroring the
// teacher's Option pattern (bfs.Option, prim_kruskal.Option).
type Options struct {
	MaxIterations int
	Diag          logger.Diag
}

// Option mutates an Options value.
type Option func(*Options)

// WithMaxIterations overrides the default iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithDiag attaches an operational tracer.
func WithDiag(d logger.Diag) Option {
	return func(o *Options) { o.Diag = d }
}

func defaultOptions() Options {
	return Options{MaxIterations: 250}
}
