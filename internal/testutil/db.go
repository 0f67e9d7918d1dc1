// Package testutil provides fixtures shared by package tests that need a
// populated data store.
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/todoey/internal/datastore"
	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/types"
)

// CreateTestCategory creates a category or fails the test
func CreateTestCategory(t *testing.T, store datastore.DataStore, name string) *models.Category {
	t.Helper()
	cat, err := store.CreateCategory(context.Background(), datastore.CreateCategoryRequest{Name: name})
	if err != nil {
		t.Fatalf("Failed to create category %q: %v", name, err)
	}
	return cat
}

// CreateTestItem creates an item or fails the test
func CreateTestItem(t *testing.T, store datastore.DataStore, categoryID types.CategoryID, title string) *models.Item {
	t.Helper()
	item, err := store.CreateItem(context.Background(), categoryID, title)
	if err != nil {
		t.Fatalf("Failed to create item %q: %v", title, err)
	}
	return item
}

// CreateHomeCategory creates the "Home" category with three items in a fixed order
func CreateHomeCategory(t *testing.T, store datastore.DataStore) (*models.Category, []*models.Item) {
	t.Helper()
	home := CreateTestCategory(t, store, "Home")
	items := []*models.Item{
		CreateTestItem(t, store, home.ID, "Find Mike"),
		CreateTestItem(t, store, home.ID, "Buy Eggos"),
		CreateTestItem(t, store, home.ID, "Destroy Demogorgon"),
	}
	return home, items
}
