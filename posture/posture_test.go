package posture_test

import (
	"testing"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/posture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates_DiagonalLegMatchesShorterAxis(t *testing.T) {
	diag, straight := posture.Candidates(geom.Pt(0, 0), geom.Pt(1000, 400))

	require := assert.New(t)
	require.Len(diag.Points, 3)
	require.Equal(geom.Pt(400, 400), diag.Points[1])

	require.Len(straight.Points, 3)
	require.Equal(geom.Pt(600, 0), straight.Points[1])
}

func TestCandidates_DegenerateOnPureDiagonal(t *testing.T) {
	diag, straight := posture.Candidates(geom.Pt(0, 0), geom.Pt(500, 500))
	assert.Equal(t, diag.Points[1], straight.Points[1])
}

func TestFlipped_IsInvolution(t *testing.T) {
	assert.Equal(t, posture.StraightFirst, posture.DiagonalFirst.Flipped())
	assert.Equal(t, posture.DiagonalFirst, posture.StraightFirst.Flipped())
}

func TestTracer_ChoosesDiagonalWhenTrailMovesDiagonally(t *testing.T) {
	tr := posture.NewTracer(0.2, 0.05)
	tr.Observe(geom.Pt(0, 0))
	tr.Observe(geom.Pt(100, 100))
	tr.Observe(geom.Pt(200, 200))

	chain := tr.Choose(geom.Pt(0, 0), geom.Pt(1000, 400))
	assert.Equal(t, posture.DiagonalFirst, tr.Posture())
	assert.Equal(t, geom.Pt(400, 400), chain.Points[1])
}

func TestTracer_LockPreventsImmediateFlip(t *testing.T) {
	tr := posture.NewTracer(0.1, 0.6)
	tr.Observe(geom.Pt(0, 0))
	tr.Observe(geom.Pt(100, 100))
	tr.Choose(geom.Pt(0, 0), geom.Pt(1000, 400))
	assert.Equal(t, posture.DiagonalFirst, tr.Posture())

	tr.Observe(geom.Pt(1000, 100))
	tr.Choose(geom.Pt(0, 0), geom.Pt(1000, 400))
	assert.Equal(t, posture.DiagonalFirst, tr.Posture())
}

func TestTracer_FlipPosture_ForcesOtherDirectionAndHoldsIt(t *testing.T) {
	tr := posture.NewTracer(0.1, 0.1)
	require.Equal(t, posture.DiagonalFirst, tr.Posture())

	tr.FlipPosture()
	assert.Equal(t, posture.StraightFirst, tr.Posture())

	// A trail that strongly favors DiagonalFirst would flip an unlocked
	// tracer straight back; the manual lock must hold StraightFirst.
	tr.Observe(geom.Pt(0, 0))
	tr.Observe(geom.Pt(100, 100))
	tr.Observe(geom.Pt(200, 200))
	chain := tr.Choose(geom.Pt(0, 0), geom.Pt(1000, 400))

	assert.Equal(t, posture.StraightFirst, tr.Posture())
	assert.Equal(t, geom.Pt(600, 0), chain.Points[1])
}

func TestTracer_FlipPosture_ClearedByReset(t *testing.T) {
	tr := posture.NewTracer(0.1, 0.1)
	tr.FlipPosture()
	require.Equal(t, posture.StraightFirst, tr.Posture())

	tr.Reset()
	tr.Observe(geom.Pt(0, 0))
	tr.Observe(geom.Pt(100, 100))
	tr.Observe(geom.Pt(200, 200))
	tr.Choose(geom.Pt(0, 0), geom.Pt(1000, 400))

	assert.Equal(t, posture.DiagonalFirst, tr.Posture())
}

func TestTracer_Reset_ClearsTrailAndLock(t *testing.T) {
	tr := posture.NewTracer(0.1, 0.1)
	tr.Observe(geom.Pt(0, 0))
	tr.Observe(geom.Pt(100, 100))
	tr.Choose(geom.Pt(0, 0), geom.Pt(1000, 400))

	tr.Reset()
	assert.Equal(t, posture.DiagonalFirst, tr.Posture())
}
