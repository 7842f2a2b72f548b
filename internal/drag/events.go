package drag

import (
	"sync"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

// Kind identifies a drag lifecycle or gesture-state event.
type Kind int

const (
	KindPossible Kind = iota
	KindFailed
	KindBegan
	KindMoved
	KindEnded
	KindCancelled
	KindRejected
)

var kindNames = map[Kind]string{
	KindPossible:  "possible",
	KindFailed:    "failed",
	KindBegan:     "began",
	KindMoved:     "moved",
	KindEnded:     "ended",
	KindCancelled: "cancelled",
	KindRejected:  "rejected",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is delivered to every subscribed listener.
type Event struct {
	Kind   Kind
	Edge   geometry.EdgeSide
	X      int
	Y      float64
	Offset float64
	Index  int
	Err    error
}

// Listener receives tracker events on the goroutine that triggered them.
type Listener func(Event)

type listenerEntry struct {
	id uint64
	fn Listener
}

// listeners keeps subscription order so delivery is deterministic.
type listeners struct {
	mu      sync.Mutex
	nextID  uint64
	entries []listenerEntry
}

func (l *listeners) subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			for i, entry := range l.entries {
				if entry.id == id {
					l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
					return
				}
			}
		})
	}
}

func (l *listeners) emit(evt Event) {
	l.mu.Lock()
	snapshot := make([]Listener, len(l.entries))
	for i, entry := range l.entries {
		snapshot[i] = entry.fn
	}
	l.mu.Unlock()
	for _, fn := range snapshot {
		fn(evt)
	}
}
