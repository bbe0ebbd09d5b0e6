// Package placer implements the interactive line placer of §2.9/§4.5: a
// START -> ROUTE -> FINISH state machine holding a volatile head (the
// segment currently being rerouted to the cursor) and a tail (the
// already-accepted sequence for the current interaction), dispatching each
// cursor move to mark-obstacles, walkaround, or shove per its configured
// mode. FixRoute commits the head into the branch as real linked items and appends it to the tail;
// UnfixRoute pops the most recent fixed stage. The state-machine shape
// (typed Result, early-exit transitions) follows a shortest-path solver's
// iterate-until-settled style.
package placer
