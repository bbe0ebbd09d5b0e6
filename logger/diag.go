package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Diag is the router's internal operational tracer, built on zerolog.
// Every algorithm package (shove, walkaround, placer, router) takes a Diag
// by value; the zero value is a valid no-op logger (Enabled() == false) so
// callers that never configure one pay nothing beyond a field check, and
// never touch the zero-value zerolog.Logger's nil writer.
type Diag struct {
	log     zerolog.Logger
	enabled bool
}

// NewDiag builds a Diag writing structured events to w at the given level.
func NewDiag(w io.Writer, level zerolog.Level) Diag {
	return Diag{
		log:     zerolog.New(w).Level(level).With().Timestamp().Logger(),
		enabled: true,
	}
}

// Enabled reports whether this Diag was configured with NewDiag (as
// opposed to the zero value, used when no tracing was requested).
func (d Diag) Enabled() bool { return d.enabled }

// ShoveIteration records one round of shove propagation.
func (d Diag) ShoveIteration(round, worklistLen, rank int) {
	if !d.enabled {
		return
	}
	d.log.Debug().Int("round", round).Int("worklist", worklistLen).Int("rank", rank).Msg("shove iteration")
}

// ShoveOutcome records the terminal state of a shove attempt.
func (d Diag) ShoveOutcome(state string, rounds int) {
	if !d.enabled {
		return
	}
	d.log.Debug().Str("state", state).Int("rounds", rounds).Msg("shove outcome")
}

// WalkaroundStep records one obstacle re-route during a walkaround attempt.
func (d Diag) WalkaroundStep(detail string, hop int) {
	if !d.enabled {
		return
	}
	d.log.Debug().Str("detail", detail).Int("hop", hop).Msg("walkaround step")
}

// WalkaroundFailure records a walkaround termination reason.
func (d Diag) WalkaroundFailure(reason string, hops int) {
	if !d.enabled {
		return
	}
	d.log.Debug().Str("reason", reason).Int("hops", hops).Msg("walkaround failure")
}

// PlacerTransition records a placer state-machine transition.
func (d Diag) PlacerTransition(from, to string) {
	if !d.enabled {
		return
	}
	d.log.Debug().Str("from", from).Str("to", to).Msg("placer transition")
}

// MeanderTuning records one amplitude-growth step of meander fitting.
func (d Diag) MeanderTuning(amplitude int64, status string) {
	if !d.enabled {
		return
	}
	d.log.Debug().Int64("amplitude", amplitude).Str("status", status).Msg("meander tuning")
}
