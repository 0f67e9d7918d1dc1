package models

import (
	"time"

	"github.com/thenoetrevino/todoey/internal/types"
)

// Item represents a single to-do entry
// CategoryID is derived from ownership and cannot be changed after creation
type Item struct {
	ID         types.ItemID     `json:"id" yaml:"id"`
	Title      string           `json:"title" yaml:"title"`
	Done       bool             `json:"done" yaml:"done"`
	CreatedAt  time.Time        `json:"created_at" yaml:"created_at"`
	CategoryID types.CategoryID `json:"category_id" yaml:"category_id"`
}

// GetID is used by the CLI quiet output mode
func (i *Item) GetID() string {
	return string(i.ID)
}
