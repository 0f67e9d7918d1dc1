package models

import (
	"time"

	"github.com/thenoetrevino/todoey/internal/types"
)

// Category is a named grouping that owns an ordered list of items.
// Deleting a category deletes every item it owns.
type Category struct {
	ID        types.CategoryID `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	ColorTag  string           `json:"color_tag" yaml:"color_tag"` // Hex color code (e.g., "#1D9BF6")
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	Items     []Item           `json:"items" yaml:"items"`
}

// GetID is used by the CLI quiet output mode
func (c *Category) GetID() string {
	return string(c.ID)
}

// Clone returns a deep copy so callers can never alias the store's internal slices
func (c *Category) Clone() *Category {
	out := *c
	out.Items = make([]Item, len(c.Items))
	copy(out.Items, c.Items)
	return &out
}

// ItemIndex returns the position of the item with the given id, or -1
func (c *Category) ItemIndex(id types.ItemID) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}
