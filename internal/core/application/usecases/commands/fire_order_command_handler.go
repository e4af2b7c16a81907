package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// FireOrderCommandHandler sends an open order to the kitchen. The rule
// snapshot is read inside the same transaction that persists the order and
// its tickets, so a rule change can never split a single fire.
type FireOrderCommandHandler struct {
	uowFactory FireUoWFactory
	engine     services.RoutingEngine
	dispatcher services.TicketDispatcher
	publisher  ports.EventPublisher
}

// NewFireOrderCommandHandler creates a handler for the fire workflow.
func NewFireOrderCommandHandler(
	uowFactory FireUoWFactory,
	engine services.RoutingEngine,
	dispatcher services.TicketDispatcher,
	publisher ports.EventPublisher,
) FireOrderCommandHandler {
	return FireOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		dispatcher: dispatcher,
		publisher:  publisher,
	}
}

// Handle processes the fire command.
func (h *FireOrderCommandHandler) Handle(ctx context.Context, cmd FireOrderCommand) error {
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

	foundOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	tickets, err := fireAndDispatch(ctx, foundOrder, uow.RuleRepository(), h.engine, h.dispatcher, now)
	if err != nil {
		return err
	}

	if err = uow.TicketRepository().AddAll(ctx, tickets); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, foundOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishTicketsCreated(ctx, h.publisher, foundOrder, tickets, false)

	return nil
}
