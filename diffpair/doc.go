// Package diffpair routes a coupled pair of nets (P and N) as one
// interaction: Start validates the anchor spacing against the configured
// gap plus track width, and every Move advances a shared centre-line,
// offsets it by half that distance to each side, and resolves both resulting candidates through
// shove, walkaround, and mark-obstacles jointly so the pair always moves
// (or marks) together rather than drifting apart.
//
// It is grounded on placer's interaction shape (Start/Move/FixRoute over a
// branch opened at Start, State transitions, the shove-then-walkaround-
// then-mark-obstacles cascade) doubled across two chains that must share
// one branch, which is why it reimplements that cascade directly instead
// of composing two independent placer.Placer values: two placers opened on
// sibling branches would never see each other's additions, defeating the
// joint-shove requirement.
package diffpair
