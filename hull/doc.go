// Package hull builds the inflated convex boundary ("hull") around a
// routable item that the walkaround and shove engines use: an octagonal
// hull for simple shapes (rectangle with 45-degree chamfers sized so a
// line of the given width walking around at the given clearance fits
// exactly), and a sampled, merged hull for arcs and compound shapes.
//
// Hull(clearance, walkaroundWidth, layer) is the canonical entry point;
// callers must pass clearance as resolver output + width/2, per the
// contract in §4.2.
package hull
