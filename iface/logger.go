package iface

import "github.com/solderpath/pns/item"

// LogEvent is one replayable event: a world-model mutation or routing
// decision worth persisting alongside a board dump so a session can be
// replayed deterministically (§6).
type LogEvent struct {
	Kind      string
	Pos       item.Point
	Layer     int
	Items     []item.UID
	ItemCount int
}

// Logger is the optional external replay sink (§6). The router core calls
// it synchronously from its own thread; implementations that need
// buffering or async flush own that themselves.
type Logger interface {
	Log(evt LogEvent)
}
