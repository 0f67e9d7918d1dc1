// Package datastore owns the lifecycle of categories and items and is the only
// writer of persisted state. It is written once against storage.Medium.
package datastore

import (
	"context"

	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/types"
)

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategory(ctx context.Context, id types.CategoryID) (*models.Category, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error)
	RenameCategory(ctx context.Context, id types.CategoryID, name string) (*models.Category, error)
	SetCategoryColor(ctx context.Context, id types.CategoryID, colorTag string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id types.CategoryID) error
}

// CategoryRepository combines all category-related operations.
type CategoryRepository interface {
	CategoryReader
	CategoryWriter
}

// ItemReader defines read operations for items.
type ItemReader interface {
	ListItems(ctx context.Context, categoryID types.CategoryID) ([]*models.Item, error)
	GetItem(ctx context.Context, id types.ItemID) (*models.Item, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	CreateItem(ctx context.Context, categoryID types.CategoryID, title string) (*models.Item, error)
	ToggleDone(ctx context.Context, id types.ItemID) (*models.Item, error)
	UpdateItemTitle(ctx context.Context, id types.ItemID, title string) (*models.Item, error)
	DeleteItem(ctx context.Context, id types.ItemID) error
}

// ItemRepository combines all item-related operations.
type ItemRepository interface {
	ItemReader
	ItemWriter
}

// DataStore defines the unified interface for all data operations needed by the CLI.
// Consumers can depend on the smaller interfaces for clearer dependencies.
type DataStore interface {
	CategoryRepository
	ItemRepository
	Reload(ctx context.Context) error
}

// CreateCategoryRequest encapsulates data for creating a category
type CreateCategoryRequest struct {
	Name     string
	ColorTag string // Optional; empty selects the store's default
}

// Compile-time verification that *Store implements DataStore
var _ DataStore = (*Store)(nil)
