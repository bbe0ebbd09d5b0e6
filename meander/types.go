package meander

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/logger"
	"github.com/solderpath/pns/rule"
)

// Status is the outcome of a Fit/FitPair call relative to the target
// length.
type Status int

const (
	// StatusTuned means the achieved length is within tolerance of the
	// target.
	StatusTuned Status = iota
	// StatusTooShort means amplitude growth reached its ceiling before
	// reaching the target.
	StatusTooShort
	// StatusTooLong means trimming bumps from the end was not enough to
	// bring the result back under target+tolerance.
	StatusTooLong
)

// String renders the status for logs and test failure messages.
func (s Status) String() string {
	switch s {
	case StatusTuned:
		return "tuned"
	case StatusTooShort:
		return "too-short"
	case StatusTooLong:
		return "too-long"
	default:
		return "unknown"
	}
}

// Options configures a Fit/FitPair call.
type Options struct {
	Sizes        rule.Sizes
	Width        int64 // the meandered line's own width, for the 4x self-clearance check
	TargetLength int64
	Diag         logger.Diag
}

// Result is what Fit/FitPair returns for one meandered line.
type Result struct {
	Chain    geom.Chain
	Status   Status
	Achieved int64
	Delay    int64 // Achieved - TargetLength; negative when still short
}
