package placer_test

import (
	"fmt"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/placer"
)

// Example_startMoveFixRoute walks a single line from anchor to cursor and
// fixes it, the same start/move/fix sequence a host UI drives on every
// mouse move and click.
func Example_startMoveFixRoute() {
	root := node.NewRoot(stubResolver{clearance: 100000})
	p := placer.New(root, placer.WithMode(placer.ModeShove), placer.WithSizes(sizes()), placer.WithLayer(0), placer.WithNet(1))

	if err := p.Start(geom.Pt(0, 0)); err != nil {
		fmt.Println("start failed:", err)
		return
	}
	if err := p.Move(geom.Pt(1000000, 0)); err != nil {
		fmt.Println("move failed:", err)
		return
	}
	ok, err := p.FixRoute(true)
	if err != nil {
		fmt.Println("fix failed:", err)
		return
	}

	fmt.Println(ok, p.State() == placer.StateFinish)
	// Output: true true
}
