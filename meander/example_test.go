package meander_test

import (
	"fmt"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/meander"
)

// Example_fit tunes a baseline that already meets its target length, so no
// bumps need inserting.
func Example_fit() {
	baseline := geom.NewChain(geom.Pt(0, 0), geom.Pt(5000000, 0))
	opts := meander.Options{Sizes: sizes(), Width: 200000, TargetLength: 5000000}

	result, err := meander.Fit(baseline, opts)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	fmt.Println(result.Status)
	// Output: tuned
}
