package datastore

import (
	"github.com/thenoetrevino/todoey/internal/types"
)

const (
	// indexKey holds the ordered list of category ids
	indexKey = "categories"

	// categoryKeyPrefix prefixes the key of each category aggregate
	categoryKeyPrefix = "category/"

	indexVersion = 1
)

// indexDocument is the persisted form of the category order
type indexDocument struct {
	Version    int                `json:"version" yaml:"version"`
	Categories []types.CategoryID `json:"categories" yaml:"categories"`
}

func categoryKey(id types.CategoryID) string {
	return categoryKeyPrefix + string(id)
}
