// Package dragger implements segment/corner/via dragging (§2.10): grabbing
// an existing linked item, following the cursor with a 45-degree or
// free-angle constraint, and resolving the resulting collisions through
// the same shove/walkaround/mark-obstacles dispatch the line placer uses.
// MultiDragger generalizes this to dragging several seed items under one
// shared cursor delta, committing them as a single node delta (recovered
// from KiCad's pns_multi_dragger.h, a feature the distilled spec dropped).
package dragger
