package meander

import (
	"github.com/solderpath/pns/geom"
)

// slot is one spacing-wide stretch of the baseline: either a placed bump
// or a straight run, recorded in walk order so trimming can pop the
// last-filled one without disturbing earlier ones.
type slot struct {
	along  float64
	filled bool
	chain  geom.Chain
	length float64
}

func appendChain(acc, next geom.Chain) geom.Chain {
	if acc.IsEmpty() {
		return next
	}
	if next.IsEmpty() {
		return acc
	}
	if acc.Points[len(acc.Points)-1].Equal(next.Points[0]) {
		return geom.NewChain(append(append([]geom.Point{}, acc.Points...), next.Points[1:]...)...)
	}
	return acc.Append(next)
}

// placeRun walks f from along 0 to total in spacing-sized steps, fitting a
// bump at every step that does not come within clearance of a bump already
// placed earlier in the same run.
func placeRun(f frame, total float64, opts Options, amplitude int64) (slots []slot, leftover float64) {
	sp := float64(opts.Sizes.MeanderSpacing)
	clearance := float64(4 * opts.Width)
	var placed []geom.Chain

	along := 0.0
	for along+sp <= total {
		cand := buildBump(f, along, amplitude, opts.Sizes.MeanderSpacing, opts.Sizes.MeanderCornerStyle, opts.Sizes.MeanderCornerPercent)
		if clearance > 0 && selfIntersects(cand, placed, clearance) {
			slots = append(slots, slot{along: along, filled: false, chain: geom.NewChain(f.at(along, 0), f.at(along+sp, 0)), length: sp})
		} else {
			placed = append(placed, cand)
			slots = append(slots, slot{along: along, filled: true, chain: cand, length: cand.Length()})
		}
		along += sp
	}
	return slots, total - along
}

func totalLength(slots []slot, leftover float64) float64 {
	sum := leftover
	for _, s := range slots {
		sum += s.length
	}
	return sum
}

func statusFor(achieved, target, tolerance int64) Status {
	switch {
	case achieved < target-tolerance:
		return StatusTooShort
	case achieved > target+tolerance:
		return StatusTooLong
	default:
		return StatusTuned
	}
}

// fitCore runs the grow-then-trim tuning loop shared by Fit and FitPair's
// two sides, returning the stitched chain and achieved length.
func fitCore(f frame, start, end geom.Point, total float64, opts Options) Result {
	sizes := opts.Sizes
	maxAmp := sizes.MeanderMaxAmplitude
	if maxAmp < sizes.MeanderAmplitude {
		maxAmp = sizes.MeanderAmplitude
	}
	step := sizes.MeanderAmplitudeStep
	if step <= 0 {
		step = sizes.MeanderSpacing / 4
	}
	if step <= 0 {
		step = 1
	}
	tolerance := sizes.MeanderLengthTolerance
	if tolerance < 0 {
		tolerance = 0
	}

	amplitude := sizes.MeanderAmplitude
	var slots []slot
	var leftover float64
	var achieved float64

	for {
		slots, leftover = placeRun(f, total, opts, amplitude)
		achieved = totalLength(slots, leftover)
		opts.Diag.MeanderTuning(amplitude, statusFor(int64(achieved), opts.TargetLength, tolerance).String())
		if achieved >= float64(opts.TargetLength-tolerance) || amplitude >= maxAmp {
			break
		}
		amplitude += step
		if amplitude > maxAmp {
			amplitude = maxAmp
		}
	}

	for achieved > float64(opts.TargetLength+tolerance) {
		i := lastFilled(slots)
		if i < 0 {
			break
		}
		sp := float64(sizes.MeanderSpacing)
		achieved += sp - slots[i].length
		slots[i] = slot{along: slots[i].along, filled: false, chain: geom.NewChain(f.at(slots[i].along, 0), f.at(slots[i].along+sp, 0)), length: sp}
		opts.Diag.MeanderTuning(amplitude, statusFor(int64(achieved), opts.TargetLength, tolerance).String())
	}

	chain := geom.NewChain(start)
	for _, s := range slots {
		chain = appendChain(chain, s.chain)
	}
	chain = appendChain(chain, geom.NewChain(f.at(total-leftover, 0), end))

	return Result{
		Chain:    chain,
		Status:   statusFor(int64(achieved), opts.TargetLength, tolerance),
		Achieved: int64(achieved),
		Delay:    int64(achieved) - opts.TargetLength,
	}
}

func lastFilled(slots []slot) int {
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i].filled {
			return i
		}
	}
	return -1
}

// Fit tunes baseline to opts.TargetLength by filling it with chamfered
// U-shape bumps, growing their amplitude while short and trimming from the
// end while long, preserving a single side sign throughout.
func Fit(baseline geom.Chain, opts Options) (Result, error) {
	if baseline.Len() < 2 {
		return Result{}, ErrBaselineTooShort
	}
	if opts.Sizes.MeanderSpacing <= 0 || opts.Sizes.MeanderAmplitude <= 0 {
		return Result{}, ErrInvalidSizes
	}
	start, end := baseline.Points[0], baseline.Points[baseline.Len()-1]
	total := start.Distance(end)
	if total <= 0 {
		return Result{}, ErrBaselineTooShort
	}

	f := newFrame(start, end, 1)
	return fitCore(f, start, end, total, opts), nil
}

// FitPair tunes two baselines offset +-(gap+width)/2 from a shared
// centre-line, one per net of a differential pair. The two runs are never
// cross-checked for self-intersection against each other: they are the
// "parallel" chains the clearance rule excludes.
func FitPair(centerline geom.Chain, opts Options) (p, n Result, err error) {
	if centerline.Len() < 2 {
		return Result{}, Result{}, ErrBaselineTooShort
	}
	if opts.Sizes.MeanderSpacing <= 0 || opts.Sizes.MeanderAmplitude <= 0 {
		return Result{}, Result{}, ErrInvalidSizes
	}
	start, end := centerline.Points[0], centerline.Points[centerline.Len()-1]
	total := start.Distance(end)
	if total <= 0 {
		return Result{}, Result{}, ErrBaselineTooShort
	}

	half := opts.Sizes.DiffPairAnchorDistance() / 2

	centerFrame := newFrame(start, end, 1)
	startP, endP := centerFrame.at(0, half), centerFrame.at(total, half)
	startN, endN := centerFrame.at(0, -half), centerFrame.at(total, -half)

	p = fitCore(newFrame(startP, endP, 1), startP, endP, total, opts)
	n = fitCore(newFrame(startN, endN, 1), startN, endN, total, opts)
	return p, n, nil
}
