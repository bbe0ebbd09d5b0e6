package node

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/jointgraph"
)

// seedEndpoints returns a linked segment/arc's two anchor points, width,
// and whether it is an arc.
func seedEndpoints(it item.Linked) (a, b geom.Point, width int64, isArc bool, ok bool) {
	switch v := it.(type) {
	case *item.Segment:
		return v.Shape.A, v.Shape.B, v.Width, false, true
	case *item.Arc:
		return v.Shape.Start, v.Shape.End, v.Shape.Width, true, true
	default:
		return geom.Point{}, geom.Point{}, 0, false, false
	}
}

// AssembleLine walks the joint graph bidirectionally from seed until it
// hits a non-trivial joint (degree != 2, locked unless stopAtLocked is
// false and followLocked is true, or a width change when
// allowWidthMismatch is false), producing a Line
// with its Links populated in walk order. A loop in the joint graph
// terminates the walk at the second visit of an already-seen link,
// returning whatever was accumulated (the self-colliding-line failure
// semantics in §4.1).
func (n *Node) AssembleLine(seed item.Linked, stopAtLocked, followLocked, allowWidthMismatch bool) (*item.Line, error) {
	a, b, width, _, ok := seedEndpoints(seed)
	if !ok {
		return nil, ErrNotAssemblable
	}

	visited := map[item.UID]struct{}{seed.UID(): {}}

	// walk extends outward from `from` (an endpoint of the already-walked
	// chain) away from `exclude` (the last item walked), returning the
	// ordered list of newly visited points/links in walk order.
	walk := func(from geom.Point, exclude item.UID) ([]geom.Point, []item.UID) {
		var pts []geom.Point
		var links []item.UID
		cur := from
		lastWidth := width
		lastLayers := seed.Layers()
		lastExclude := exclude
		for {
			key := jointgraph.KeyFor(cur, lastLayers, seed.Net())
			neighbors := n.EffectiveNeighbors(key, lastExclude)
			total := len(neighbors) + 1 // +1 for the link we arrived on
			if total != 2 {
				break
			}
			nextUID := neighbors[0]
			if _, seenBefore := visited[nextUID]; seenBefore {
				break
			}
			next, found := n.Lookup(nextUID)
			if !found {
				break
			}
			na, nb, nwidth, _, nok := seedEndpoints(next)
			if !nok {
				break
			}
			if !allowWidthMismatch && nwidth != lastWidth {
				break
			}
			if joint, jok := n.Root().joints.Joint(key); jok && joint.Locked {
				if stopAtLocked {
					break
				}
				if !followLocked {
					break
				}
			}

			var far geom.Point
			switch {
			case na.Equal(cur):
				far = nb
			case nb.Equal(cur):
				far = na
			default:
				// Arrived via a different layer/net alias of the same
				// position; treat as a stop rather than guess.
				return pts, links
			}

			visited[nextUID] = struct{}{}
			pts = append(pts, far)
			links = append(links, nextUID)

			cur = far
			lastExclude = nextUID
			lastWidth = nwidth
		}
		return pts, links
	}

	backPts, backLinks := walk(a, seed.UID())
	fwdPts, fwdLinks := walk(b, seed.UID())

	chainPts := make([]geom.Point, 0, len(backPts)+2+len(fwdPts))
	for i := len(backPts) - 1; i >= 0; i-- {
		chainPts = append(chainPts, backPts[i])
	}
	chainPts = append(chainPts, a, b)
	chainPts = append(chainPts, fwdPts...)

	links := make([]item.UID, 0, len(backLinks)+1+len(fwdLinks))
	for i := len(backLinks) - 1; i >= 0; i-- {
		links = append(links, backLinks[i])
	}
	links = append(links, seed.UID())
	links = append(links, fwdLinks...)

	line := &item.Line{
		Base:  item.NewBase(seed.Layers(), seed.Net()),
		Chain: geom.NewChain(chainPts...),
		Width: width,
		Links: links,
	}
	return line, nil
}
