package meander

import "errors"

var (
	// ErrBaselineTooShort is returned by Fit/FitPair when the baseline has
	// fewer than two points or zero length.
	ErrBaselineTooShort = errors.New("meander: baseline has no length to meander along")

	// ErrInvalidSizes is returned when MeanderSpacing or MeanderAmplitude
	// is non-positive.
	ErrInvalidSizes = errors.New("meander: spacing and amplitude must be positive")
)
