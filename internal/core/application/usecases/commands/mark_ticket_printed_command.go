package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/ticket"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrMarkTicketPrintedCommandIsNotConstructed = errors.New(
	"MarkTicketPrintedCommand must be created via NewMarkTicketPrintedCommand constructor",
)

// MarkTicketPrintedCommand represents a print spooler reporting the outcome
// of a physical ticket print. Only printed and failed outcomes are accepted.
type MarkTicketPrintedCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	outcome  ticket.PrintStatus

	guard guard.ConstructorGuard
}

// NewMarkTicketPrintedCommand creates a command to record a print outcome.
func NewMarkTicketPrintedCommand(
	ticketID kernel.UUID,
	outcome ticket.PrintStatus,
) (MarkTicketPrintedCommand, error) {
	printedCommand := MarkTicketPrintedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		printedCommand.setTicketID(ticketID),
		printedCommand.setOutcome(outcome),
	); err != nil {
		return MarkTicketPrintedCommand{}, err
	}

	return printedCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkTicketPrintedCommand) Validate() error {
	return c.guard.Validate(ErrMarkTicketPrintedCommandIsNotConstructed)
}

// TicketID returns the identifier of the printed ticket.
func (c MarkTicketPrintedCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// Outcome returns the reported print outcome.
func (c MarkTicketPrintedCommand) Outcome() ticket.PrintStatus {
	return c.outcome
}

func (c *MarkTicketPrintedCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}

	c.ticketID = ticketID
	return nil
}

func (c *MarkTicketPrintedCommand) setOutcome(outcome ticket.PrintStatus) error {
	if outcome != ticket.Printed && outcome != ticket.PrintFailed {
		return errs.NewValueIsInvalidError("outcome")
	}

	c.outcome = outcome
	return nil
}
