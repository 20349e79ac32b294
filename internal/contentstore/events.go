package contentstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// ChangeType enumerates document mutations.
type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeDeleted ChangeType = "deleted"
)

// ChangeEvent is published after a successful write.
type ChangeEvent struct {
	Type  ChangeType      `json:"type"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value,omitempty"`
	At    time.Time       `json:"at"`
}

type changeBroadcaster struct {
	mu       sync.Mutex
	nextID   uint64
	watchers map[uint64]chan ChangeEvent
}

func newChangeBroadcaster() *changeBroadcaster {
	return &changeBroadcaster{watchers: make(map[uint64]chan ChangeEvent)}
}

// Subscribe registers a watcher that lives until ctx is done. Slow watchers
// miss events rather than blocking writers.
func (b *changeBroadcaster) Subscribe(ctx context.Context, buffer int) <-chan ChangeEvent {
	if ctx == nil {
		ctx = context.Background()
	}
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan ChangeEvent, buffer)
	if ctx.Err() != nil {
		close(ch)
		return ch
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.watchers[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.watchers, id)
		close(ch)
		b.mu.Unlock()
	}()
	return ch
}

func (b *changeBroadcaster) Broadcast(evt ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.watchers {
		select {
		case ch <- evt:
		default:
		}
	}
}
