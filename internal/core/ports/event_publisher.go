package ports

import (
	"context"
	"time"
)

// TicketCreatedEvent notifies kitchen display systems that a ticket was
// dispatched to a station.
type TicketCreatedEvent struct {
	TicketID    string    `json:"ticket_id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	StationID   string    `json:"station_id"`
	ItemIDs     []string  `json:"item_ids"`
	FireSeq     int       `json:"fire_seq"`
	Reprint     bool      `json:"reprint"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemStatusChangedEvent notifies kitchen display systems that an order item
// moved to a new status.
type ItemStatusChangedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	ItemID      string    `json:"item_id"`
	Status      string    `json:"status"`
	OrderStatus string    `json:"order_status"`
	ChangedAt   time.Time `json:"changed_at"`
}

// EventPublisher pushes domain events to the message broker after commit.
// The core never talks to the broker directly; publish failures are logged by
// adapters and never fail the originating command.
type EventPublisher interface {
	// PublishTicketCreated announces a dispatched or reprinted ticket.
	PublishTicketCreated(ctx context.Context, event TicketCreatedEvent) error

	// PublishItemStatusChanged announces an item status change.
	PublishItemStatusChanged(ctx context.Context, event ItemStatusChangedEvent) error
}
