// Package item defines the router's polymorphic routable item model: the
// tagged variants {Segment, Arc, Via, Solid, Hole, Line, DiffPair} that
// populate a node, plus the shared attributes every item carries (layer
// range, net handle, markers, rank, UID).
//
// The source this router is adapted from used deep class inheritance
// (Item -> LinkedItem -> Segment/Arc/Via/...). Per the redesign notes this
// is expressed here as a sum type: Kind() tags the variant and Item is a
// small interface implemented by each concrete struct, dispatched with a
// type switch rather than virtual calls.
package item
