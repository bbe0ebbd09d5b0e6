package meander_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/meander"
	"github.com/solderpath/pns/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizes() rule.Sizes {
	return rule.Sizes{
		TrackWidth:             200000,
		MeanderAmplitude:       300000,
		MeanderMaxAmplitude:    1500000,
		MeanderAmplitudeStep:   150000,
		MeanderSpacing:         500000,
		MeanderCornerStyle:     rule.CornerChamfered,
		MeanderCornerPercent:   0.5,
		MeanderLengthTolerance: 50000,
	}
}

func TestFit_TunesToTargetWithinTolerance(t *testing.T) {
	baseline := geom.NewChain(geom.Pt(0, 0), geom.Pt(5000000, 0))
	opts := meander.Options{Sizes: sizes(), Width: 200000, TargetLength: 6150000}

	result, err := meander.Fit(baseline, opts)
	require.NoError(t, err)
	assert.Equal(t, meander.StatusTuned, result.Status)
	assert.InDelta(t, opts.TargetLength, result.Achieved, float64(sizes().MeanderLengthTolerance))
}

func TestFit_TooShort_WhenTargetExceedsAmplitudeCeiling(t *testing.T) {
	baseline := geom.NewChain(geom.Pt(0, 0), geom.Pt(5000000, 0))
	opts := meander.Options{Sizes: sizes(), Width: 200000, TargetLength: 50000000}

	result, err := meander.Fit(baseline, opts)
	require.NoError(t, err)
	assert.Equal(t, meander.StatusTooShort, result.Status)
}

func TestFit_StraightBaseline_WhenTargetAlreadyMet(t *testing.T) {
	baseline := geom.NewChain(geom.Pt(0, 0), geom.Pt(5000000, 0))
	opts := meander.Options{Sizes: sizes(), Width: 200000, TargetLength: 5000000}

	result, err := meander.Fit(baseline, opts)
	require.NoError(t, err)
	assert.Equal(t, meander.StatusTuned, result.Status)
}

func TestFit_RejectsEmptyBaseline(t *testing.T) {
	_, err := meander.Fit(geom.Chain{}, meander.Options{Sizes: sizes(), Width: 200000, TargetLength: 1000000})
	assert.ErrorIs(t, err, meander.ErrBaselineTooShort)
}

func TestFit_RejectsInvalidSizes(t *testing.T) {
	s := sizes()
	s.MeanderSpacing = 0
	baseline := geom.NewChain(geom.Pt(0, 0), geom.Pt(5000000, 0))
	_, err := meander.Fit(baseline, meander.Options{Sizes: s, Width: 200000, TargetLength: 1000000})
	assert.ErrorIs(t, err, meander.ErrInvalidSizes)
}

func TestFitPair_BothSidesTunedAndParallel(t *testing.T) {
	s := sizes()
	s.DiffPairGap = 150000
	s.DiffPairWidth = 200000
	centerline := geom.NewChain(geom.Pt(0, 0), geom.Pt(5000000, 0))
	opts := meander.Options{Sizes: s, Width: 200000, TargetLength: 6150000}

	p, n, err := meander.FitPair(centerline, opts)
	require.NoError(t, err)
	assert.Equal(t, meander.StatusTuned, p.Status)
	assert.Equal(t, meander.StatusTuned, n.Status)
	assert.NotEqual(t, p.Chain.Points[0], n.Chain.Points[0])
}
