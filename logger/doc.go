// Package logger provides the router's two distinct logging surfaces.
//
// ReplayLogger implements iface.Logger: an append-only, line-oriented JSON
// sink with no third-party dependency, because its output must be
// host-parseable without pulling a schema library into the consuming
// application (§6). One JSON object per line, no timestamps (replay is
// driven by event order, not wall-clock time), so a board dump plus this
// log fully reconstructs a session.
//
// Diag is the router's own internal operational trace -- shove iteration
// counts, walkaround failures, placer state transitions -- built on
// zerolog, the structured-logging library the wider example pack reaches
// for. It is never exposed to the host and carries no replay guarantee.
package logger
