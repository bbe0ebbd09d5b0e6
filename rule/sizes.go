package rule

import "github.com/solderpath/pns/item"

// CornerStyle selects how a meander bump's corners are drawn.
type CornerStyle int

const (
	CornerRounded CornerStyle = iota
	CornerChamfered
)

// Sizes is the track/via/diff-pair configuration snapshot placers read at
// the start of an interaction. The replay logger does not record it. It arrives from
// the host; the router core never parses it from a file or flag (§6: "no
// wire protocol, no CLI, no environment variables are owned by the core").
type Sizes struct {
	Clearance            int64 // working clearance
	MinClearance         int64 // board floor
	TrackWidth           int64
	TrackWidthIsExplicit bool
	BoardMinTrackWidth   int64

	ViaDiameter  int64
	ViaDrill     int64
	ViaType      item.ViaType
	LayerPairTop int
	LayerPairBot int
	HoleToHole   int64
	Unconnected  item.UnconnectedLayerMode

	DiffPairWidth       int64
	DiffPairGap         int64
	DiffPairViaGap      int64
	DiffPairViaGapBound bool // true if ViaGap tracks DiffPairGap automatically

	MeanderAmplitude       int64 // starting bump amplitude
	MeanderMaxAmplitude    int64 // amplitude growth ceiling
	MeanderAmplitudeStep   int64 // growth increment per tuning round
	MeanderSpacing         int64 // baseline run consumed by one bump
	MeanderCornerStyle     CornerStyle
	MeanderCornerPercent   float64 // corner cut as a percent of min(amplitude, spacing)/2
	MeanderLengthTolerance int64   // +- band around the target length counted as TUNED

	// Source carries a human-readable provenance string per size, for UI
	// display ("board minimum", "netclass FastSignals", ...).
	Source map[string]string
}

// SourceFor returns the provenance string for a named size, or "" if none
// was recorded.
func (s Sizes) SourceFor(name string) string {
	if s.Source == nil {
		return ""
	}
	return s.Source[name]
}

// DiffPairAnchorDistance returns the expected center-to-center distance
// between paired anchors: gap + width, used by the ±10% tolerance check in
// diffpair.Start.
func (s Sizes) DiffPairAnchorDistance() int64 {
	return s.DiffPairGap + s.DiffPairWidth
}
