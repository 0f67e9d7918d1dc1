package events

import (
	"time"

	"github.com/thenoetrevino/todoey/internal/types"
)

// EventType indicates what kind of change was committed
type EventType string

const (
	EventCategoryCreated EventType = "category_created"
	EventCategoryUpdated EventType = "category_updated"
	EventCategoryDeleted EventType = "category_deleted"
	EventItemCreated     EventType = "item_created"
	EventItemUpdated     EventType = "item_updated"
	EventItemDeleted     EventType = "item_deleted"
)

// Event is a notification that a change has been durably written
type Event struct {
	Type       EventType
	CategoryID types.CategoryID // Owning category, set for every event
	ItemID     types.ItemID     // Empty for category events
	Timestamp  time.Time        // When the event was published
	SequenceID int64            // Monotonically increasing sequence number for ordering
}
