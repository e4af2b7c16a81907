package commands

import (
	"context"

	"orders/internal/core/domain/model/ticket"
)

// MarkTicketPrintedCommandHandler records the outcome of a physical ticket
// print reported by the spooler.
type MarkTicketPrintedCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewMarkTicketPrintedCommandHandler creates a handler for print outcomes.
func NewMarkTicketPrintedCommandHandler(uowFactory TicketUoWFactory) MarkTicketPrintedCommandHandler {
	return MarkTicketPrintedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the print outcome command.
func (h *MarkTicketPrintedCommandHandler) Handle(ctx context.Context, cmd MarkTicketPrintedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if cmd.Outcome() == ticket.Printed {
		err = foundTicket.MarkPrinted()
	} else {
		err = foundTicket.MarkPrintFailed()
	}
	if err != nil {
		return err
	}

	if err = ticketRepo.Update(ctx, foundTicket); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
