package datastore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/thenoetrevino/todoey/internal/events"
	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/storage"
	"github.com/thenoetrevino/todoey/internal/types"
)

// Store is the Data Store. Every operation runs under one mutex, so writes to
// the medium are serialized and no caller observes a half-applied change.
//
// Mutations build the new aggregate as a copy, persist it, and only then swap
// it into memory. A failed write therefore leaves memory at the last durable state.
type Store struct {
	mu     sync.Mutex
	medium storage.Medium
	codec  Codec

	eventClient events.EventPublisher
	logger      *slog.Logger

	now           func() time.Time
	newCategoryID func() types.CategoryID
	newItemID     func() types.ItemID
	pickColor     func() string

	loaded     bool
	order      []types.CategoryID
	categories map[types.CategoryID]*models.Category
	itemIndex  map[types.ItemID]types.CategoryID
}

// Option configures a Store
type Option func(*Store)

// WithCodec sets the serialization format of persisted documents
func WithCodec(c Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// WithEventPublisher publishes an event after every committed mutation
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(s *Store) {
		s.eventClient = ec
	}
}

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides time.Now for creation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerators overrides id generation
func WithIDGenerators(category func() types.CategoryID, item func() types.ItemID) Option {
	return func(s *Store) {
		s.newCategoryID = category
		s.newItemID = item
	}
}

// WithColorPicker chooses the color tag for categories created without one
func WithColorPicker(pick func() string) Option {
	return func(s *Store) {
		s.pickColor = pick
	}
}

// New creates a store over medium. Nothing is read until the first operation.
func New(medium storage.Medium, opts ...Option) *Store {
	s := &Store{
		medium:        medium,
		codec:         JSONCodec{},
		logger:        slog.Default(),
		now:           time.Now,
		newCategoryID: types.NewCategoryID,
		newItemID:     types.NewItemID,
		pickColor:     func() string { return models.DefaultColorTag },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset drops the in-memory view; the next operation reloads from the medium
func (s *Store) reset() {
	s.loaded = false
	s.order = nil
	s.categories = make(map[types.CategoryID]*models.Category)
	s.itemIndex = make(map[types.ItemID]types.CategoryID)
}

// Reload discards the in-memory view and re-reads the medium
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return s.ensureLoaded(ctx)
}

// ensureLoaded reads the index and every aggregate on first use.
// On failure the view stays empty and the next call tries again.
// Callers must hold s.mu.
func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	var idx indexDocument
	if err := s.readDocument(ctx, indexKey, &idx); err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			s.loaded = true
			s.logger.Debug("no persisted categories, starting empty")
			return nil
		}
		return err
	}

	order := make([]types.CategoryID, 0, len(idx.Categories))
	categories := make(map[types.CategoryID]*models.Category, len(idx.Categories))
	itemIndex := make(map[types.ItemID]types.CategoryID)

	for _, id := range idx.Categories {
		if _, dup := categories[id]; dup {
			return &models.StorageError{Op: "decode", Key: indexKey, Err: fmt.Errorf("duplicate category %s", id)}
		}

		key := categoryKey(id)
		cat := &models.Category{}
		if err := s.readDocument(ctx, key, cat); err != nil {
			if errors.Is(err, storage.ErrNotExist) {
				return &models.StorageError{Op: "read", Key: key, Err: fmt.Errorf("indexed category is missing: %w", storage.ErrNotExist)}
			}
			return err
		}
		if cat.ID != id {
			return &models.StorageError{Op: "decode", Key: key, Err: fmt.Errorf("aggregate holds category %q", cat.ID)}
		}
		if cat.Items == nil {
			cat.Items = []models.Item{}
		}
		for i := range cat.Items {
			// Ownership is defined by the aggregate, not the stored back-reference
			cat.Items[i].CategoryID = id
			if _, dup := itemIndex[cat.Items[i].ID]; dup {
				return &models.StorageError{Op: "decode", Key: key, Err: fmt.Errorf("duplicate item %s", cat.Items[i].ID)}
			}
			itemIndex[cat.Items[i].ID] = id
		}

		order = append(order, id)
		categories[id] = cat
	}

	s.order = order
	s.categories = categories
	s.itemIndex = itemIndex
	s.loaded = true
	s.logger.Debug("loaded categories", "count", len(order), "items", len(itemIndex))
	return nil
}

// readDocument reads key and decodes it into v.
// A missing key is returned as storage.ErrNotExist, unwrapped.
func (s *Store) readDocument(ctx context.Context, key string, v any) error {
	data, err := s.medium.Read(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return storage.ErrNotExist
		}
		return &models.StorageError{Op: "read", Key: key, Err: err}
	}
	if err := s.codec.Unmarshal(data, v); err != nil {
		return &models.StorageError{Op: "decode", Key: key, Err: err}
	}
	return nil
}

// writeDocument encodes v and durably writes it under key
func (s *Store) writeDocument(ctx context.Context, key string, v any) error {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return &models.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := s.medium.Write(ctx, key, data); err != nil {
		return &models.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

func (s *Store) writeCategory(ctx context.Context, cat *models.Category) error {
	return s.writeDocument(ctx, categoryKey(cat.ID), cat)
}

func (s *Store) writeIndex(ctx context.Context, order []types.CategoryID) error {
	return s.writeDocument(ctx, indexKey, indexDocument{
		Version:    indexVersion,
		Categories: order,
	})
}

// deleteOrphan removes an aggregate that is no longer referenced by the index.
// The index is authoritative, so a failure only leaves unreachable bytes behind.
func (s *Store) deleteOrphan(ctx context.Context, id types.CategoryID) {
	if err := s.medium.Delete(ctx, categoryKey(id)); err != nil {
		s.logger.Warn("failed to remove unreferenced category record",
			"category_id", id,
			"error", err)
	}
}

// lookupCategory returns the live aggregate. Callers must hold s.mu and must not mutate it.
func (s *Store) lookupCategory(id types.CategoryID) (*models.Category, error) {
	cat, ok := s.categories[id]
	if !ok {
		return nil, &models.NotFoundError{Kind: "category", ID: string(id)}
	}
	return cat, nil
}

// lookupItem resolves an item id through the index
func (s *Store) lookupItem(id types.ItemID) (*models.Category, int, error) {
	catID, ok := s.itemIndex[id]
	if !ok {
		return nil, -1, &models.NotFoundError{Kind: "item", ID: string(id)}
	}
	cat, err := s.lookupCategory(catID)
	if err != nil {
		return nil, -1, err
	}
	idx := cat.ItemIndex(id)
	if idx < 0 {
		return nil, -1, &models.NotFoundError{Kind: "item", ID: string(id)}
	}
	return cat, idx, nil
}

// commitCategory swaps a persisted aggregate into memory and announces it
func (s *Store) commitCategory(next *models.Category, eventType events.EventType, itemID types.ItemID) {
	s.categories[next.ID] = next
	s.logger.Debug("committed category",
		"category_id", next.ID,
		"event_type", eventType,
		"items", len(next.Items))
	s.publish(eventType, next.ID, itemID)
}

func (s *Store) publish(eventType events.EventType, categoryID types.CategoryID, itemID types.ItemID) {
	events.Publish(s.eventClient, events.Event{
		Type:       eventType,
		CategoryID: categoryID,
		ItemID:     itemID,
		Timestamp:  s.now(),
	})
}

func withoutCategory(order []types.CategoryID, id types.CategoryID) []types.CategoryID {
	return slices.DeleteFunc(slices.Clone(order), func(c types.CategoryID) bool {
		return c == id
	})
}
