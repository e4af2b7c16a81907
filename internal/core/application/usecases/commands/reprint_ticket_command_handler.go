package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/ticket"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// ReprintTicketCommandHandler reissues a ticket with the original station and
// item snapshot under the next fire sequence of the order.
type ReprintTicketCommandHandler struct {
	uowFactory TicketUoWFactory
	dispatcher services.TicketDispatcher
	publisher  ports.EventPublisher
}

// NewReprintTicketCommandHandler creates a handler for ticket reprints.
func NewReprintTicketCommandHandler(
	uowFactory TicketUoWFactory,
	dispatcher services.TicketDispatcher,
	publisher ports.EventPublisher,
) ReprintTicketCommandHandler {
	return ReprintTicketCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		publisher:  publisher,
	}
}

// Handle processes the reprint command.
func (h *ReprintTicketCommandHandler) Handle(ctx context.Context, cmd ReprintTicketCommand) error {
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

	ticketRepo := uow.TicketRepository()

	original, err := ticketRepo.Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	foundOrder, err := orderRepo.Get(ctx, original.OrderID())
	if err != nil {
		return err
	}

	reprint, err := h.dispatcher.Reprint(foundOrder, original, now)
	if err != nil {
		return err
	}

	if err = ticketRepo.Add(ctx, reprint); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, foundOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishTicketsCreated(ctx, h.publisher, foundOrder, []*ticket.Ticket{reprint}, true)

	return nil
}
