package datastore

import (
	"context"
	"slices"

	"github.com/thenoetrevino/todoey/internal/events"
	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/types"
)

// ListItems returns a category's items in insertion order
func (s *Store) ListItems(ctx context.Context, categoryID types.CategoryID) ([]*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	cat, err := s.lookupCategory(categoryID)
	if err != nil {
		return nil, err
	}

	items := make([]*models.Item, len(cat.Items))
	for i := range cat.Items {
		item := cat.Items[i]
		items[i] = &item
	}
	return items, nil
}

// GetItem retrieves a single item
func (s *Store) GetItem(ctx context.Context, id types.ItemID) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	cat, idx, err := s.lookupItem(id)
	if err != nil {
		return nil, err
	}
	item := cat.Items[idx]
	return &item, nil
}

// CreateItem appends a new, not-done item to a category
func (s *Store) CreateItem(ctx context.Context, categoryID types.CategoryID, title string) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	current, err := s.lookupCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	id := s.newItemID()
	if _, exists := s.itemIndex[id]; exists {
		return nil, &models.ValidationError{Field: "id", Reason: "generated id collides with an existing item"}
	}

	item := models.Item{
		ID:         id,
		Title:      title,
		Done:       false,
		CreatedAt:  s.now(),
		CategoryID: categoryID,
	}

	next := current.Clone()
	next.Items = append(next.Items, item)
	if err := s.writeCategory(ctx, next); err != nil {
		return nil, err
	}

	s.itemIndex[id] = categoryID
	s.commitCategory(next, events.EventItemCreated, id)
	return &item, nil
}

// ToggleDone flips an item's done flag
func (s *Store) ToggleDone(ctx context.Context, id types.ItemID) (*models.Item, error) {
	return s.updateItem(ctx, id, func(item *models.Item) {
		item.Done = !item.Done
	})
}

// UpdateItemTitle changes an item's title
func (s *Store) UpdateItemTitle(ctx context.Context, id types.ItemID, title string) (*models.Item, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return s.updateItem(ctx, id, func(item *models.Item) {
		item.Title = title
	})
}

func (s *Store) updateItem(ctx context.Context, id types.ItemID, mutate func(*models.Item)) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	current, idx, err := s.lookupItem(id)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	mutate(&next.Items[idx])
	if err := s.writeCategory(ctx, next); err != nil {
		return nil, err
	}

	s.commitCategory(next, events.EventItemUpdated, id)
	item := next.Items[idx]
	return &item, nil
}

// DeleteItem removes an item from its category
func (s *Store) DeleteItem(ctx context.Context, id types.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	current, idx, err := s.lookupItem(id)
	if err != nil {
		return err
	}

	next := current.Clone()
	next.Items = slices.Delete(next.Items, idx, idx+1)
	if err := s.writeCategory(ctx, next); err != nil {
		return err
	}

	delete(s.itemIndex, id)
	s.commitCategory(next, events.EventItemDeleted, id)
	return nil
}
