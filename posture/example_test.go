package posture_test

import (
	"fmt"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/posture"
)

// Example_candidates shows the two 45-degree routes offered between a start
// anchor and the cursor: one bends early, the other bends late.
func Example_candidates() {
	diagonalFirst, straightFirst := posture.Candidates(geom.Pt(0, 0), geom.Pt(2000000, 1000000))

	fmt.Println(diagonalFirst.Len(), straightFirst.Len())
	// Output: 3 3
}
