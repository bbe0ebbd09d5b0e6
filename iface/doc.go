// Package iface declares the router core's external collaborators: the
// host board adapter the core calls during commit and for queries it
// cannot answer locally (ROUTER_IFACE), and the optional replay logger.
// Per §1 these are out of the core's scope -- board persistence, the net
// database, undo/redo, and rendering all live on the other side of this
// boundary.
package iface
