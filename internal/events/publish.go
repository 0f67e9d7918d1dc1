package events

import "log/slog"

// Publish sends event if a publisher is configured.
// Failures are logged, not returned: the change it describes is already durable.
func Publish(pub EventPublisher, event Event) {
	if pub == nil {
		return
	}
	if err := pub.SendEvent(event); err != nil {
		slog.Warn("failed to publish event",
			"event_type", event.Type,
			"category_id", event.CategoryID,
			"item_id", event.ItemID,
			"error", err)
	}
}
