package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/storefront/services/item/domain/models"
)

// Watermill topics published by the item service.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemEventVersion is the schema version stamped on every item event.
// Increment on breaking changes.
const ItemEventVersion = 1

// ItemCreatedEvent is published after a new Item is stored.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated, ...).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent is published after a patch is applied.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	Fields     []string  `json:"fields"` // names of the patched fields
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemCreated builds the creation event for item.
func NewItemCreated(item models.Item, at time.Time) ItemCreatedEvent {
	return ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    ItemEventVersion,
		ItemID:     item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   item.Quantity,
		OccurredAt: at.UTC(),
	}
}

// NewItemUpdated builds the update event listing which fields patch set.
func NewItemUpdated(id string, patch models.ItemPatch, at time.Time) ItemUpdatedEvent {
	fields := []string{}
	if patch.Name != nil {
		fields = append(fields, "name")
	}
	if patch.Price != nil {
		fields = append(fields, "price")
	}
	if patch.Quantity != nil {
		fields = append(fields, "quantity")
	}
	if patch.Category != nil {
		fields = append(fields, "category")
	}
	return ItemUpdatedEvent{
		EventID:    uuid.New(),
		Version:    ItemEventVersion,
		ItemID:     id,
		Fields:     fields,
		OccurredAt: at.UTC(),
	}
}

// NewItemDeleted builds the deletion event for id.
func NewItemDeleted(id string, at time.Time) ItemDeletedEvent {
	return ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    ItemEventVersion,
		ItemID:     id,
		OccurredAt: at.UTC(),
	}
}
