package logger

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/solderpath/pns/iface"
)

// replayRecord is the on-disk shape of one iface.LogEvent.
type replayRecord struct {
	Kind      string `json:"kind"`
	X         int64  `json:"x"`
	Y         int64  `json:"y"`
	Layer     int    `json:"layer"`
	Items     []string `json:"items,omitempty"`
	ItemCount int    `json:"item_count"`
}

// ReplayLogger writes one JSON object per line to w, flushing after every
// event so a crash mid-session loses at most the in-flight event.
type ReplayLogger struct {
	mu sync.Mutex
	w  *bufio.Writer
	enc *json.Encoder
}

// NewReplayLogger wraps w in a buffered, line-flushing JSON writer.
func NewReplayLogger(w io.Writer) *ReplayLogger {
	bw := bufio.NewWriter(w)
	return &ReplayLogger{w: bw, enc: json.NewEncoder(bw)}
}

// Log implements iface.Logger.
func (l *ReplayLogger) Log(evt iface.LogEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := replayRecord{
		Kind:      evt.Kind,
		X:         evt.Pos.X,
		Y:         evt.Pos.Y,
		Layer:     evt.Layer,
		ItemCount: evt.ItemCount,
	}
	for _, uid := range evt.Items {
		rec.Items = append(rec.Items, uid.String())
	}
	// Encoding/flush errors have no recovery path for a best-effort replay
	// sink; callers that need durability guarantees should wrap w
	// themselves (e.g. an *os.File opened with O_SYNC).
	_ = l.enc.Encode(rec)
	_ = l.w.Flush()
}

var _ iface.Logger = (*ReplayLogger)(nil)
