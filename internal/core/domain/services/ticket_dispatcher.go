package services

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/ticket"
)

var (
	// ErrOrderIsNotFired is returned when tickets are requested for an order
	// that has not been fired.
	ErrOrderIsNotFired = errors.New("order is not fired")

	// ErrTicketOrderMismatch is returned when a reprint pairs a ticket with an
	// order it does not belong to.
	ErrTicketOrderMismatch = errors.New("ticket does not belong to order")
)

// TicketDispatcher is the domain service that turns a fired order into station
// tickets.
//
// Key responsibilities:
//   - Grouping fired items by their resolved stations
//   - Emitting exactly one ticket per station with at least one item
//   - Stamping every ticket of one fire event with the same fire sequence
//
// Business rules:
//   - Fan-out may place one item on several tickets
//   - No item with a resolved station is dropped; no empty tickets
//   - A reprint is a new ticket with the same snapshot and the order's next
//     fire sequence; routing is never re-invoked
type TicketDispatcher struct{}

// NewTicketDispatcher creates a new TicketDispatcher instance.
func NewTicketDispatcher() TicketDispatcher {
	return TicketDispatcher{}
}

// Dispatch builds the ticket batch for the order's current fire event. The
// order must have just been fired: every fired item carries its resolved
// stations. It consumes the order's next fire sequence; every ticket in the
// batch shares it.
//
// Stations appear in the order they are first referenced by the order's items,
// which keeps the batch deterministic.
func (d TicketDispatcher) Dispatch(o *order.Order, now time.Time) ([]*ticket.Ticket, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Fired {
		return nil, fmt.Errorf("%w: order %s is %s", ErrOrderIsNotFired, o.ID(), o.Status())
	}

	stationOrder := make([]kernel.UUID, 0)
	itemsByStation := make(map[kernel.UUID][]kernel.UUID)
	for _, item := range o.Items() {
		if item.Status() != order.ItemFired {
			continue
		}
		for _, stationID := range item.StationIDs() {
			if _, ok := itemsByStation[stationID]; !ok {
				stationOrder = append(stationOrder, stationID)
			}
			itemsByStation[stationID] = append(itemsByStation[stationID], item.ID())
		}
	}

	if len(stationOrder) == 0 {
		return nil, fmt.Errorf("%w: order %s has no routed items", ErrOrderIsNotFired, o.ID())
	}

	fireSeq := o.NextFireSequence()
	tickets := make([]*ticket.Ticket, 0, len(stationOrder))
	for _, stationID := range stationOrder {
		tk, err := ticket.NewTicket(kernel.NewUUID(), o.ID(), stationID, itemsByStation[stationID], fireSeq, now)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, tk)
	}

	return tickets, nil
}

// Reprint creates a fresh ticket from an existing one: same station, same item
// snapshot, the order's next fire sequence. The new ticket starts unacked with
// print status pending.
func (d TicketDispatcher) Reprint(o *order.Order, original *ticket.Ticket, now time.Time) (*ticket.Ticket, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := original.Validate(); err != nil {
		return nil, err
	}
	if !original.OrderID().IsEqual(o.ID()) {
		return nil, fmt.Errorf("%w: ticket %s, order %s", ErrTicketOrderMismatch, original.ID(), o.ID())
	}
	if o.FiredAt() == nil || o.Status().IsTerminal() {
		return nil, fmt.Errorf("%w: order %s is %s", ErrOrderIsNotFired, o.ID(), o.Status())
	}

	return ticket.NewTicket(kernel.NewUUID(), o.ID(), original.StationID(), original.ItemIDs(), o.NextFireSequence(), now)
}
