package events

import (
	"time"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventItemCreated        EventType = "item_created"
	EventItemUpdated        EventType = "item_updated"
	EventItemDeleted        EventType = "item_deleted"
	EventStockStatusChanged EventType = "stock_status_changed"
)

// Event represents a domain event emitted by services. Events are
// fire-and-forget notification fan-out; they are not an audit log and
// the activity endpoints never read them.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ItemID    string      `json:"item_id"`
	OwnerID   string      `json:"owner_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ItemCreatedPayload payload.
type ItemCreatedPayload struct {
	Name     string             `json:"name"`
	Quantity int                `json:"quantity"`
	Category string             `json:"category"`
	Status   domain.StockStatus `json:"status"`
}

// ItemUpdatedPayload payload.
type ItemUpdatedPayload struct {
	Name     string             `json:"name"`
	Quantity int                `json:"quantity"`
	Status   domain.StockStatus `json:"status"`
}

// ItemDeletedPayload payload.
type ItemDeletedPayload struct {
	Name string `json:"name"`
}

// StockStatusChangedPayload payload.
type StockStatusChangedPayload struct {
	Name      string             `json:"name"`
	OldStatus domain.StockStatus `json:"old_status"`
	NewStatus domain.StockStatus `json:"new_status"`
	Quantity  int                `json:"quantity"`
}
