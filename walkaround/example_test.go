package walkaround_test

import (
	"fmt"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
	"github.com/solderpath/pns/walkaround"
)

// Example_attempt straightens a path around a single blocking obstacle.
func Example_attempt() {
	root := node.NewRoot(stubResolver{clearance: 100000})
	obstacle := &item.Solid{
		LinkedBase: item.NewLinkedBase(item.SingleLayer(0), 2),
		Rect:       geom.Rect{Min: geom.Pt(400000, -200000), Max: geom.Pt(600000, 200000)},
	}
	if _, err := root.Add(obstacle, false); err != nil {
		fmt.Println("add failed:", err)
		return
	}

	path := geom.NewChain(geom.Pt(0, 0), geom.Pt(1000000, 0))
	opts := walkaround.Options{
		Layer:    0,
		Net:      1,
		Width:    200000,
		Resolver: stubResolver{clearance: 100000},
	}

	detour, err := walkaround.Attempt(root, path, opts)
	if err != nil {
		fmt.Println("attempt failed:", err)
		return
	}

	fmt.Println(detour.Len() > path.Len())
	// Output: true
}
