package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todoey/internal/types"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recv reads one event or fails after a second
func recv(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

// waitClosed fails unless ch is drained and closed within a second
func waitClosed(t *testing.T, ch <-chan Event) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel was not closed")
		}
	}
}

func TestBus_DeliversInOrderWithSequence(t *testing.T) {
	bus := NewBus(0)
	defer func() { require.NoError(t, bus.Close()) }()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventCategoryCreated, CategoryID: "c1"}))
	require.NoError(t, bus.SendEvent(Event{Type: EventItemCreated, CategoryID: "c1", ItemID: "i1"}))

	first := recv(t, ch)
	second := recv(t, ch)

	assert.Equal(t, EventCategoryCreated, first.Type)
	assert.Equal(t, EventItemCreated, second.Type)
	assert.Equal(t, int64(1), first.SequenceID)
	assert.Equal(t, int64(2), second.SequenceID)
	assert.False(t, first.Timestamp.IsZero(), "timestamp should be stamped")
}

func TestBus_FanOut(t *testing.T) {
	bus := NewBus(0)
	defer func() { require.NoError(t, bus.Close()) }()

	a, err := bus.Listen(context.Background())
	require.NoError(t, err)
	b, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventItemDeleted, CategoryID: "c1", ItemID: "i1"}))

	assert.Equal(t, types.ItemID("i1"), recv(t, a).ItemID)
	assert.Equal(t, types.ItemID("i1"), recv(t, b).ItemID)
}

func TestBus_ContextCancelClosesListener(t *testing.T) {
	bus := NewBus(0)
	defer func() { require.NoError(t, bus.Close()) }()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Listen(ctx)
	require.NoError(t, err)

	cancel()
	waitClosed(t, ch)

	// Sending after the listener left must not panic
	require.NoError(t, bus.SendEvent(Event{Type: EventCategoryDeleted}))
}

func TestBus_CloseClosesListenersAndRejectsUse(t *testing.T) {
	bus := NewBus(0)

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.Close())
	waitClosed(t, ch)

	assert.True(t, errors.Is(bus.SendEvent(Event{}), ErrClosed))
	_, err = bus.Listen(context.Background())
	assert.ErrorIs(t, err, ErrClosed)

	// Close is idempotent
	assert.NoError(t, bus.Close())
}

func TestBus_SlowListenerDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus(1)
	defer func() { require.NoError(t, bus.Close()) }()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, bus.SendEvent(Event{Type: EventItemUpdated}))
	}

	ev := recv(t, ch)
	assert.Equal(t, int64(1), ev.SequenceID)
	select {
	case extra := <-ch:
		t.Fatalf("expected later events to be dropped, got sequence %d", extra.SequenceID)
	default:
	}
}

func TestBus_ConcurrentSenders(t *testing.T) {
	bus := NewBus(256)
	defer func() { require.NoError(t, bus.Close()) }()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = bus.SendEvent(Event{Type: EventItemUpdated})
			}
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for i := 0; i < 80; i++ {
		ev := recv(t, ch)
		assert.False(t, seen[ev.SequenceID], "duplicate sequence %d", ev.SequenceID)
		seen[ev.SequenceID] = true
	}
}

// recordingPublisher captures events for verification
type recordingPublisher struct {
	mu   sync.Mutex
	sent []Event
	err  error
}

func (r *recordingPublisher) SendEvent(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, event)
	return r.err
}

func (r *recordingPublisher) Listen(context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	close(ch)
	return ch, nil
}

func (r *recordingPublisher) Close() error { return nil }

func TestPublish(t *testing.T) {
	// Nil publisher is a no-op
	Publish(nil, Event{Type: EventCategoryCreated})

	rec := &recordingPublisher{}
	Publish(rec, Event{Type: EventCategoryCreated, CategoryID: "c1"})
	require.Len(t, rec.sent, 1)
	assert.Equal(t, EventCategoryCreated, rec.sent[0].Type)

	// Errors are swallowed after logging
	rec.err = errors.New("boom")
	Publish(rec, Event{Type: EventCategoryDeleted})
	assert.Len(t, rec.sent, 2)
}

func TestBus_Metrics(t *testing.T) {
	bus := NewBus(1)
	defer func() { require.NoError(t, bus.Close()) }()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Listen(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), bus.Metrics().Listeners)

	for i := 0; i < 3; i++ {
		require.NoError(t, bus.SendEvent(Event{Type: EventItemUpdated}))
	}

	snapshot := bus.Metrics()
	assert.Equal(t, int64(3), snapshot.EventsSent)
	assert.Equal(t, int64(1), snapshot.EventsDelivered)
	assert.Equal(t, int64(2), snapshot.EventsDropped)
	assert.False(t, snapshot.StartTime.IsZero())
	assert.NotEmpty(t, snapshot.Uptime)

	cancel()
	waitClosed(t, ch)
	assert.Equal(t, int32(0), bus.Metrics().Listeners)
}
