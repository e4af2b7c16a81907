package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/ticket"
)

// TicketRepository defines the persistence contract for kitchen tickets.
type TicketRepository interface {
	// Add persists a new ticket.
	Add(ctx context.Context, aggregate *ticket.Ticket) error

	// AddAll persists a fire event's ticket batch.
	AddAll(ctx context.Context, aggregates []*ticket.Ticket) error

	// Update persists changes to an existing ticket.
	Update(ctx context.Context, aggregate *ticket.Ticket) error

	// Get retrieves a ticket by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error)

	// GetByOrder retrieves every ticket of an order, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*ticket.Ticket, error)

	// GetActiveByStation retrieves tickets of active orders for a station,
	// ordered by order priority (VIP first) then creation time.
	GetActiveByStation(ctx context.Context, stationID kernel.UUID) ([]*ticket.Ticket, error)
}
