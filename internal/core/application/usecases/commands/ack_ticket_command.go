package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrAckTicketCommandIsNotConstructed = errors.New(
	"AckTicketCommand must be created via NewAckTicketCommand constructor",
)

// AckTicketCommand represents a station acknowledging receipt of a ticket.
type AckTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAckTicketCommand creates a command to acknowledge a ticket.
func NewAckTicketCommand(ticketID kernel.UUID) (AckTicketCommand, error) {
	ackCommand := AckTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := ackCommand.setTicketID(ticketID); err != nil {
		return AckTicketCommand{}, err
	}

	return ackCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AckTicketCommand) Validate() error {
	return c.guard.Validate(ErrAckTicketCommandIsNotConstructed)
}

// TicketID returns the identifier of the ticket to acknowledge.
func (c AckTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c *AckTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}

	c.ticketID = ticketID
	return nil
}
