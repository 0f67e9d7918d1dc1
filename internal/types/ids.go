package types

import "github.com/google/uuid"

// ID types give semantic meaning to the opaque identifiers handed out by the data store.
// Both are UUIDv4 strings, so ids stay unique no matter which storage backend is in use.

// CategoryID identifies a unique category
type CategoryID string

// ItemID identifies a unique item within a category
type ItemID string

// NewCategoryID returns a fresh random category ID
func NewCategoryID() CategoryID {
	return CategoryID(uuid.NewString())
}

// NewItemID returns a fresh random item ID
func NewItemID() ItemID {
	return ItemID(uuid.NewString())
}

func (id CategoryID) String() string {
	return string(id)
}

func (id ItemID) String() string {
	return string(id)
}
