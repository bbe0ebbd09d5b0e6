package node_test

import (
	"fmt"

	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
)

// Example_branchAndCommit demonstrates the branch/overlay/commit lifecycle:
// a branch shadows one item with another, and Commit grafts only the net
// effect back into root.
func Example_branchAndCommit() {
	root := node.NewRoot(stubResolver{clearance: 100000})

	track := seg(geom.Pt(0, 0), geom.Pt(1000000, 0), 1, 200000)
	if _, err := root.Add(track, false); err != nil {
		fmt.Println("add failed:", err)
		return
	}

	branch := root.Branch()
	if err := branch.Remove(track); err != nil {
		fmt.Println("remove failed:", err)
		return
	}
	replacement := seg(geom.Pt(0, 0), geom.Pt(1000000, 500000), 1, 200000)
	if _, err := branch.Add(replacement, false); err != nil {
		fmt.Println("add failed:", err)
		return
	}

	if err := root.Commit(branch, &stubBoard{}); err != nil {
		fmt.Println("commit failed:", err)
		return
	}

	fmt.Println(root.Has(track.UID()), root.Has(replacement.UID()))
	// Output: false true
}
