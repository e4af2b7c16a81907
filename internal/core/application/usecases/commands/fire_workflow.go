package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/ticket"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// fireAndDispatch runs the fire workflow against an open order: it loads the
// active rule snapshot inside the caller's transaction, resolves routing for
// every non-cancelled item, fires the order and builds the ticket batch.
// The caller persists the order, the tickets and the commit.
func fireAndDispatch(
	ctx context.Context,
	o *order.Order,
	ruleRepo ports.RuleRepository,
	engine services.RoutingEngine,
	dispatcher services.TicketDispatcher,
	now time.Time,
) ([]*ticket.Ticket, error) {
	rules, err := ruleRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	routes, err := engine.ResolveOrder(o, rules)
	if err != nil {
		return nil, err
	}

	if err = o.Fire(routes, now); err != nil {
		return nil, err
	}

	return dispatcher.Dispatch(o, now)
}

// publishTicketsCreated announces a ticket batch after commit. Publish
// failures never fail the originating command; the adapter logs them.
func publishTicketsCreated(
	ctx context.Context,
	publisher ports.EventPublisher,
	o *order.Order,
	tickets []*ticket.Ticket,
	reprint bool,
) {
	if publisher == nil {
		return
	}
	for _, tk := range tickets {
		itemIDs := make([]string, 0, len(tk.ItemIDs()))
		for _, itemID := range tk.ItemIDs() {
			itemIDs = append(itemIDs, itemID.String())
		}
		_ = publisher.PublishTicketCreated(ctx, ports.TicketCreatedEvent{
			TicketID:    tk.ID().String(),
			OrderID:     o.ID().String(),
			OrderNumber: o.Number(),
			StationID:   tk.StationID().String(),
			ItemIDs:     itemIDs,
			FireSeq:     tk.FireSeq(),
			Reprint:     reprint,
			CreatedAt:   tk.CreatedAt(),
		})
	}
}

// publishItemStatusChanged announces an item status change after commit.
func publishItemStatusChanged(
	ctx context.Context,
	publisher ports.EventPublisher,
	o *order.Order,
	item *order.Item,
	now time.Time,
) {
	if publisher == nil {
		return
	}
	_ = publisher.PublishItemStatusChanged(ctx, ports.ItemStatusChangedEvent{
		OrderID:     o.ID().String(),
		OrderNumber: o.Number(),
		ItemID:      item.ID().String(),
		Status:      item.Status().String(),
		OrderStatus: o.Status().String(),
		ChangedAt:   now,
	})
}
