package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrRecallOrderCommandIsNotConstructed = errors.New(
	"RecallOrderCommand must be created via NewRecallOrderCommand constructor",
)

// RecallOrderCommand represents the expo pulling a ready order back into
// preparation.
type RecallOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecallOrderCommand creates a command to recall a ready order.
func NewRecallOrderCommand(orderID kernel.UUID) (RecallOrderCommand, error) {
	recallCommand := RecallOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := recallCommand.setOrderID(orderID); err != nil {
		return RecallOrderCommand{}, err
	}

	return recallCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecallOrderCommand) Validate() error {
	return c.guard.Validate(ErrRecallOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to recall.
func (c RecallOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RecallOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
