package node

import (
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/item"
)

// defaultCellSize is the grid bucket edge length in internal units (PCB
// units are nanometres; 1mm cells are a reasonable default bucket size for
// typical track/via geometry).
const defaultCellSize int64 = 1_000_000

type cellKey struct {
	layer int
	cx, cy int64
}

// index is the node's spatial index: a layer-partitioned grid bucket map
// from cell to the set of linked items whose inflated bounding box touches
// that cell. It is a simplification of an R-tree-like layered index (see
// package doc) but satisfies the same contract: candidate retrieval for a
// query box is O(cells touched), never O(all items).
type index struct {
	cellSize int64
	buckets  map[cellKey]map[item.UID]struct{}
	boxes    map[item.UID]geom.Rect
	layers   map[item.UID]item.LayerRange
}

func newIndex() *index {
	return &index{
		cellSize: defaultCellSize,
		buckets:  make(map[cellKey]map[item.UID]struct{}),
		boxes:    make(map[item.UID]geom.Rect),
		layers:   make(map[item.UID]item.LayerRange),
	}
}

func (ix *index) cellRange(box geom.Rect) (x0, y0, x1, y1 int64) {
	cs := ix.cellSize
	return floorDiv(box.Min.X, cs), floorDiv(box.Min.Y, cs), floorDiv(box.Max.X, cs), floorDiv(box.Max.Y, cs)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// insert indexes uid under its inflated bounding box for every layer in its
// layer range (copper items pinned to one layer index under that single
// layer; vias index under every layer they span so a query on any spanned
// layer finds them).
func (ix *index) insert(uid item.UID, box geom.Rect, layers item.LayerRange) {
	ix.boxes[uid] = box
	ix.layers[uid] = layers
	x0, y0, x1, y1 := ix.cellRange(box)
	for l := layers.Start; l <= layers.End; l++ {
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				key := cellKey{layer: l, cx: x, cy: y}
				if ix.buckets[key] == nil {
					ix.buckets[key] = make(map[item.UID]struct{})
				}
				ix.buckets[key][uid] = struct{}{}
			}
		}
	}
}

func (ix *index) remove(uid item.UID) {
	box, ok := ix.boxes[uid]
	if !ok {
		return
	}
	layers := ix.layers[uid]
	x0, y0, x1, y1 := ix.cellRange(box)
	for l := layers.Start; l <= layers.End; l++ {
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				key := cellKey{layer: l, cx: x, cy: y}
				if b, ok := ix.buckets[key]; ok {
					delete(b, uid)
					if len(b) == 0 {
						delete(ix.buckets, key)
					}
				}
			}
		}
	}
	delete(ix.boxes, uid)
	delete(ix.layers, uid)
}

// query returns the set of candidate UIDs whose bucket overlaps box on
// exactly the given layer; no layer value acts as an any-layer wildcard.
func (ix *index) query(box geom.Rect, layer int) map[item.UID]struct{} {
	out := make(map[item.UID]struct{})
	x0, y0, x1, y1 := ix.cellRange(box)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			key := cellKey{layer: layer, cx: x, cy: y}
			for uid := range ix.buckets[key] {
				out[uid] = struct{}{}
			}
		}
	}
	return out
}
