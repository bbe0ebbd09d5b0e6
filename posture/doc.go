// Package posture implements the interactive routing-posture tracer of
// §2.13/§4.8: a two-segment 45-degree candidate pair (diagonal-first vs
// straight-first) between an anchor and the cursor, chosen by comparing
// each candidate's initial direction against the recent mouse trail, with
// a lock/unlock hysteresis so small jitter doesn't flip the posture on
// every frame. The trailing-window comparison follows a dynamic-time-
// warping shape: a bounded trailing window of recent samples feeding a
// cost comparison between two candidate alignments.
package posture
