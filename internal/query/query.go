// Package query derives filtered and sorted views of item snapshots.
// Nothing here mutates its input or talks to the data store.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/todoey/internal/models"
)

// SortKey selects the field items are ordered by
type SortKey string

const (
	SortByTitle     SortKey = "title"
	SortByCreatedAt SortKey = "createdAt"
	SortByDone      SortKey = "done"
)

// ParseSortKey accepts the canonical key names plus a few CLI-friendly aliases
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title", "name":
		return SortByTitle, nil
	case "createdat", "created", "created_at", "date":
		return SortByCreatedAt, nil
	case "done", "status":
		return SortByDone, nil
	}
	return "", &models.ValidationError{
		Field:  "sort key",
		Reason: fmt.Sprintf("%q is not one of title, createdAt, done", s),
	}
}

// Option customizes Search
type Option func(*searchConfig)

type searchConfig struct {
	key       SortKey
	ascending bool
}

// WithSort orders search results by key instead of ascending createdAt
func WithSort(key SortKey, ascending bool) Option {
	return func(c *searchConfig) {
		c.key = key
		c.ascending = ascending
	}
}

// Search returns the items whose title contains substring, ignoring case and
// diacritics. Matches are ordered by ascending createdAt unless WithSort says
// otherwise. A substring that is empty, or folds to nothing (a lone combining
// mark), returns every item in input order.
func Search(items []*models.Item, substring string, opts ...Option) []*models.Item {
	if substring == "" {
		return slices.Clone(items)
	}

	cfg := searchConfig{key: SortByCreatedAt, ascending: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	needle := fold(substring)
	if needle == "" {
		return slices.Clone(items)
	}
	matches := make([]*models.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold(item.Title), needle) {
			matches = append(matches, item)
		}
	}

	sorted, err := SortBy(matches, cfg.key, cfg.ascending)
	if err != nil {
		// Unknown key from WithSort: keep filter order
		return matches
	}
	return sorted
}

// SortBy returns a stably sorted copy of items. Items with equal keys keep
// their relative input order in both directions.
func SortBy(items []*models.Item, key SortKey, ascending bool) ([]*models.Item, error) {
	compare, err := comparator(key)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(items)
	if ascending {
		slices.SortStableFunc(out, compare)
	} else {
		slices.SortStableFunc(out, func(a, b *models.Item) int {
			return compare(b, a)
		})
	}
	return out, nil
}

func comparator(key SortKey) (func(a, b *models.Item) int, error) {
	switch key {
	case SortByTitle:
		return func(a, b *models.Item) int {
			return strings.Compare(fold(a.Title), fold(b.Title))
		}, nil
	case SortByCreatedAt:
		return func(a, b *models.Item) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}, nil
	case SortByDone:
		return func(a, b *models.Item) int {
			return cmp.Compare(boolRank(a.Done), boolRank(b.Done))
		}, nil
	}
	return nil, &models.ValidationError{
		Field:  "sort key",
		Reason: fmt.Sprintf("unsupported key %q", key),
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
