package store

import (
	"time"

	"counterdeck/internal/domain"
)

const defaultHistorySize = 200

// HistoryEntry records a single dispatched action
type HistoryEntry struct {
	At     time.Time
	Action domain.Action
}

// historyRing keeps the last N dispatched actions. It is a debug log for
// the action-log viewer, not a replay mechanism; callers hold the store
// lock while using it.
type historyRing struct {
	buf   []HistoryEntry
	start int
	count int
}

func newHistoryRing(size int) *historyRing {
	if size <= 0 {
		size = 1
	}
	return &historyRing{buf: make([]HistoryEntry, size)}
}

func (r *historyRing) record(action domain.Action) {
	pos := (r.start + r.count) % len(r.buf)
	r.buf[pos] = HistoryEntry{At: time.Now(), Action: action}
	if r.count < len(r.buf) {
		r.count++
	} else {
		r.start = (r.start + 1) % len(r.buf)
	}
}

// entries returns the recorded dispatches, oldest first.
func (r *historyRing) entries() []HistoryEntry {
	out := make([]HistoryEntry, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.buf[(r.start+i)%len(r.buf)]
	}
	return out
}
