package commands

import (
	"context"
	"time"
)

// AckTicketCommandHandler records a station acknowledging a ticket. The
// acknowledged items move to preparing, and the first acknowledgment moves
// the order from fired to in-progress.
type AckTicketCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewAckTicketCommandHandler creates a handler for ticket acknowledgment.
func NewAckTicketCommandHandler(uowFactory TicketUoWFactory) AckTicketCommandHandler {
	return AckTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgment command.
func (h *AckTicketCommandHandler) Handle(ctx context.Context, cmd AckTicketCommand) error {
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

	foundTicket, err := ticketRepo.Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	foundOrder, err := orderRepo.Get(ctx, foundTicket.OrderID())
	if err != nil {
		return err
	}

	if err = foundOrder.Ack(foundTicket.ItemIDs(), now); err != nil {
		return err
	}

	foundTicket.Ack(now)

	if err = ticketRepo.Update(ctx, foundTicket); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, foundOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
