package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for item lifecycle events.
const (
	// TopicItemCreated is published when a new Item is persisted.
	TopicItemCreated = "item.created"

	// TopicItemProcessed is published when an Item reaches PROCESSED,
	// either through the batch sweep or a direct update.
	TopicItemProcessed = "item.processed"
)

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID      uuid.UUID `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Email       string    `json:"email"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemProcessedEvent is published after an Item transitions to PROCESSED.
// Handlers must be idempotent: the batch sweep re-saves already-processed
// items on every run, so the same item can be announced more than once.
type ItemProcessedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
