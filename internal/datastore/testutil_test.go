package datastore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todoey/internal/events"
	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/storage/memstore"
	"github.com/thenoetrevino/todoey/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var errInjected = errors.New("injected write failure")

// faultyMedium wraps a memstore and fails selected operations on demand
type faultyMedium struct {
	*memstore.Store

	mu           sync.Mutex
	failPrefixes []string
	failDeletes  bool
	writes       int
}

func newFaultyMedium() *faultyMedium {
	return &faultyMedium{Store: memstore.New()}
}

// failWrites makes every write to a key with one of the prefixes fail
func (f *faultyMedium) failWrites(prefixes ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPrefixes = prefixes
}

func (f *faultyMedium) heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPrefixes = nil
	f.failDeletes = false
}

func (f *faultyMedium) Write(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	for _, p := range f.failPrefixes {
		if strings.HasPrefix(key, p) {
			f.mu.Unlock()
			return errInjected
		}
	}
	f.writes++
	f.mu.Unlock()
	return f.Store.Write(ctx, key, data)
}

func (f *faultyMedium) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failDeletes
	f.mu.Unlock()
	if fail {
		return errInjected
	}
	return f.Store.Delete(ctx, key)
}

func (f *faultyMedium) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// raw returns the bytes stored under key, or "" when absent
func (f *faultyMedium) raw(t *testing.T, key string) string {
	t.Helper()
	data, err := f.Store.Read(context.Background(), key)
	if err != nil {
		return ""
	}
	return string(data)
}

// sequentialIDs yields readable, deterministic ids
func sequentialIDs() Option {
	var cats, items int
	return WithIDGenerators(
		func() types.CategoryID {
			cats++
			return types.CategoryID(fmt.Sprintf("cat-%d", cats))
		},
		func() types.ItemID {
			items++
			return types.ItemID(fmt.Sprintf("item-%d", items))
		},
	)
}

// steppingClock advances one minute per call
func steppingClock() Option {
	t := time.Date(2019, 5, 2, 9, 0, 0, 0, time.UTC)
	return WithClock(func() time.Time {
		t = t.Add(time.Minute)
		return t
	})
}

// setupStore returns a store over a faulty in-memory medium
func setupStore(t *testing.T, opts ...Option) (*Store, *faultyMedium) {
	t.Helper()
	medium := newFaultyMedium()
	opts = append([]Option{sequentialIDs(), steppingClock()}, opts...)
	return New(medium, opts...), medium
}

// createCategory creates a category or fails the test
func createCategory(t *testing.T, s *Store, name string) *models.Category {
	t.Helper()
	cat, err := s.CreateCategory(context.Background(), CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return cat
}

// createItems adds items to a category in order or fails the test
func createItems(t *testing.T, s *Store, categoryID types.CategoryID, titles ...string) []*models.Item {
	t.Helper()
	out := make([]*models.Item, 0, len(titles))
	for _, title := range titles {
		item, err := s.CreateItem(context.Background(), categoryID, title)
		require.NoError(t, err)
		out = append(out, item)
	}
	return out
}

func itemTitles(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

// recordingPublisher captures events for verification
type recordingPublisher struct {
	mu   sync.Mutex
	sent []events.Event
}

func (r *recordingPublisher) SendEvent(event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, event)
	return nil
}

func (r *recordingPublisher) Listen(context.Context) (<-chan events.Event, error) {
	ch := make(chan events.Event)
	close(ch)
	return ch, nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, len(r.sent))
	for i, ev := range r.sent {
		out[i] = ev.Type
	}
	return out
}
