package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrReprintTicketCommandIsNotConstructed = errors.New(
	"ReprintTicketCommand must be created via NewReprintTicketCommand constructor",
)

// ReprintTicketCommand represents a request to reissue an existing ticket,
// for example after a printer jam. The reprint carries a fresh fire sequence
// so the station can tell it apart from the original.
type ReprintTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReprintTicketCommand creates a command to reprint a ticket.
func NewReprintTicketCommand(ticketID kernel.UUID) (ReprintTicketCommand, error) {
	reprintCommand := ReprintTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reprintCommand.setTicketID(ticketID); err != nil {
		return ReprintTicketCommand{}, err
	}

	return reprintCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReprintTicketCommand) Validate() error {
	return c.guard.Validate(ErrReprintTicketCommandIsNotConstructed)
}

// TicketID returns the identifier of the ticket to reprint.
func (c ReprintTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c *ReprintTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}

	c.ticketID = ticketID
	return nil
}
