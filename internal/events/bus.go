package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultBufferSize is the per-listener channel capacity
const DefaultBufferSize = 64

// Bus is an in-process EventPublisher. Delivery never blocks the sender:
// a listener whose buffer is full misses the event and a warning is logged.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	seq       int64
	closed    bool
	done      chan struct{}
	wg        sync.WaitGroup
	bufSize   int
	now       func() time.Time
	metrics   *Metrics
}

// NewBus creates a bus whose listeners buffer up to bufSize events.
// A non-positive bufSize selects DefaultBufferSize.
func NewBus(bufSize int) *Bus {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	return &Bus{
		listeners: make(map[int]chan Event),
		done:      make(chan struct{}),
		bufSize:   bufSize,
		now:       time.Now,
		metrics:   NewMetrics(),
	}
}

// SendEvent stamps the event with a sequence number and timestamp and fans it out
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.seq++
	b.metrics.EventsSent.Add(1)
	event.SequenceID = b.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	for id, ch := range b.listeners {
		select {
		case ch <- event:
			b.metrics.EventsDelivered.Add(1)
		default:
			b.metrics.EventsDropped.Add(1)
			slog.Warn("dropping event for slow listener",
				"listener", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
	return nil
}

// Listen registers a new listener. The returned channel is closed when ctx
// is done or the bus is closed.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.bufSize)
	b.listeners[id] = ch
	b.metrics.Listeners.Add(1)
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.remove(id)
	}()

	return ch, nil
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.listeners[id]; ok {
		delete(b.listeners, id)
		b.metrics.Listeners.Add(-1)
		close(ch)
	}
}

// Metrics returns a snapshot of the bus delivery counters
func (b *Bus) Metrics() MetricsSnapshot {
	return b.metrics.Snapshot()
}

// Close closes every listener channel and waits for their goroutines to exit
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
