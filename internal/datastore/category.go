package datastore

import (
	"context"
	"slices"
	"strings"

	"github.com/thenoetrevino/todoey/internal/events"
	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/types"
)

// ListCategories returns every category, with its items, in insertion order.
// If the medium cannot be read the result is empty and the StorageError is returned.
func (s *Store) ListCategories(ctx context.Context) ([]*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return []*models.Category{}, err
	}

	out := make([]*models.Category, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.categories[id].Clone())
	}
	return out, nil
}

// GetCategory retrieves a category and its items
func (s *Store) GetCategory(ctx context.Context, id types.CategoryID) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	cat, err := s.lookupCategory(id)
	if err != nil {
		return nil, err
	}
	return cat.Clone(), nil
}

// CreateCategory validates and persists a new, empty category
func (s *Store) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	color := strings.TrimSpace(req.ColorTag)
	if color == "" {
		color = s.pickColor()
	}

	id := s.newCategoryID()
	if _, exists := s.categories[id]; exists {
		return nil, &models.ValidationError{Field: "id", Reason: "generated id collides with an existing category"}
	}

	cat := &models.Category{
		ID:        id,
		Name:      req.Name,
		ColorTag:  color,
		CreatedAt: s.now(),
		Items:     []models.Item{},
	}

	// Aggregate first: an index never points at a record that was not written
	if err := s.writeCategory(ctx, cat); err != nil {
		return nil, err
	}
	order := append(slices.Clone(s.order), id)
	if err := s.writeIndex(ctx, order); err != nil {
		s.deleteOrphan(ctx, id)
		return nil, err
	}

	s.order = order
	s.commitCategory(cat, events.EventCategoryCreated, "")
	return cat.Clone(), nil
}

// RenameCategory changes a category's name
func (s *Store) RenameCategory(ctx context.Context, id types.CategoryID, name string) (*models.Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return s.updateCategory(ctx, id, func(c *models.Category) {
		c.Name = name
	})
}

// SetCategoryColor changes a category's color tag. An empty tag restores the default.
func (s *Store) SetCategoryColor(ctx context.Context, id types.CategoryID, colorTag string) (*models.Category, error) {
	colorTag = strings.TrimSpace(colorTag)
	return s.updateCategory(ctx, id, func(c *models.Category) {
		if colorTag == "" {
			c.ColorTag = s.pickColor()
			return
		}
		c.ColorTag = colorTag
	})
}

func (s *Store) updateCategory(ctx context.Context, id types.CategoryID, mutate func(*models.Category)) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	current, err := s.lookupCategory(id)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	mutate(next)
	if err := s.writeCategory(ctx, next); err != nil {
		return nil, err
	}

	s.commitCategory(next, events.EventCategoryUpdated, "")
	return next.Clone(), nil
}

// DeleteCategory removes a category and every item it owns
func (s *Store) DeleteCategory(ctx context.Context, id types.CategoryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	cat, err := s.lookupCategory(id)
	if err != nil {
		return err
	}

	// The index write is the commit point; the aggregate is unreachable after it
	order := withoutCategory(s.order, id)
	if err := s.writeIndex(ctx, order); err != nil {
		return err
	}
	s.deleteOrphan(ctx, id)

	for _, item := range cat.Items {
		delete(s.itemIndex, item.ID)
	}
	delete(s.categories, id)
	s.order = order

	s.logger.Debug("deleted category", "category_id", id, "items", len(cat.Items))
	s.publish(events.EventCategoryDeleted, id, "")
	return nil
}
