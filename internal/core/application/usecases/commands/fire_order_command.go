package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrFireOrderCommandIsNotConstructed = errors.New(
	"FireOrderCommand must be created via NewFireOrderCommand constructor",
)

// FireOrderCommand represents a request to send an open order to the kitchen.
// Firing resolves routing for every item and produces the station tickets.
type FireOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFireOrderCommand creates a command to fire an order.
func NewFireOrderCommand(orderID kernel.UUID) (FireOrderCommand, error) {
	fireCommand := FireOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := fireCommand.setOrderID(orderID); err != nil {
		return FireOrderCommand{}, err
	}

	return fireCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FireOrderCommand) Validate() error {
	return c.guard.Validate(ErrFireOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to fire.
func (c FireOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FireOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
