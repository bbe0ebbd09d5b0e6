package meander

import (
	"math"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/rule"
)

// frame is the local (travel, perpendicular) basis a run of bumps is built
// in: travel points from the baseline start toward its end, perp is travel
// rotated 90 degrees and scaled by the chosen side sign.
type frame struct {
	origin             geom.Point
	tux, tuy, pux, puy float64
}

func newFrame(start, end geom.Point, side int) frame {
	travel := geom.VectorTo(start, end)
	tux, tuy := travel.Normalized()
	pux, puy := travel.Perp().Normalized()
	if side < 0 {
		pux, puy = -pux, -puy
	}
	return frame{origin: start, tux: tux, tuy: tuy, pux: pux, puy: puy}
}

// at maps a (along, across) pair in f's local basis to a world point.
func (f frame) at(along, across float64) geom.Point {
	return geom.Pt(
		f.origin.X+int64(math.Round(f.tux*along+f.pux*across)),
		f.origin.Y+int64(math.Round(f.tuy*along+f.puy*across)),
	)
}

// cornerChamfer returns the 45-degree corner cut for a bump with the given
// amplitude and spacing, the same octagonal-chamfer idea hull.Octagon applies
// to obstacle boundaries, sized as a percent of the smaller leg.
func cornerChamfer(amplitude, spacing int64, percent float64) int64 {
	if percent <= 0 {
		return 0
	}
	if percent > 1 {
		percent = 1
	}
	leg := amplitude
	if spacing < leg {
		leg = spacing
	}
	ch := int64(float64(leg) / 2 * percent)
	if ch < 0 {
		return 0
	}
	return ch
}

// buildBump returns the chamfered U-shape polyline that replaces the
// straight baseline run [along-ch, along+spacing+ch] of frame f, ch being
// the corner chamfer. style is accepted so callers can configure a rounded vs
// chamfered preference, but both currently render as the same chamfered
// polyline: an approximation close enough for the length and clearance
// math this package does, leaving true arc tessellation to the renderer.
func buildBump(f frame, along float64, amplitude, spacing int64, style rule.CornerStyle, cornerPercent float64) geom.Chain {
	ch := float64(cornerChamfer(amplitude, spacing, cornerPercent))
	amp := float64(amplitude)
	sp := float64(spacing)

	pts := []geom.Point{
		f.at(along-ch, 0),
		f.at(along, ch),
		f.at(along, amp-ch),
		f.at(along+ch, amp),
		f.at(along+sp-ch, amp),
		f.at(along+sp, amp-ch),
		f.at(along+sp, ch),
		f.at(along+sp+ch, 0),
	}
	return geom.NewChain(pts...)
}

// selfIntersects reports whether candidate comes within clearance of any
// chain in placed.
func selfIntersects(candidate geom.Chain, placed []geom.Chain, clearance float64) bool {
	for _, other := range placed {
		for _, a := range candidate.Segments() {
			for _, b := range other.Segments() {
				if geom.DistanceSegToSeg(a, b) < clearance {
					return true
				}
			}
		}
	}
	return false
}
