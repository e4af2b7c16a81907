package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/ticket"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// The order number is derived from a per-day sequence so the expo sees short,
// date-scoped numbers. When auto-fire is enabled the order is fired in the
// same transaction and its tickets are dispatched immediately.
type CreateOrderCommandHandler struct {
	uowFactory FireUoWFactory
	engine     services.RoutingEngine
	dispatcher services.TicketDispatcher
	publisher  ports.EventPublisher
	autoFire   bool
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory FireUoWFactory,
	engine services.RoutingEngine,
	dispatcher services.TicketDispatcher,
	publisher ports.EventPublisher,
	autoFire bool,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		dispatcher: dispatcher,
		publisher:  publisher,
		autoFire:   autoFire,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	seq, err := orderRepo.NextDailySequence(ctx, now)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		order.FormatNumber(now, seq),
		cmd.TableRef(),
		cmd.OrderType(),
		cmd.Priority(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return err
	}

	for _, spec := range cmd.Items() {
		item, buildErr := spec.buildItem()
		if buildErr != nil {
			return buildErr
		}
		if err = newOrder.AddItem(item); err != nil {
			return err
		}
	}

	var tickets []*ticket.Ticket
	if h.autoFire {
		tickets, err = fireAndDispatch(ctx, newOrder, uow.RuleRepository(), h.engine, h.dispatcher, now)
		if err != nil {
			return err
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if len(tickets) > 0 {
		if err = uow.TicketRepository().AddAll(ctx, tickets); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishTicketsCreated(ctx, h.publisher, newOrder, tickets, false)

	return nil
}
