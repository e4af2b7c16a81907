package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrBumpOrderCommandIsNotConstructed = errors.New(
	"BumpOrderCommand must be created via NewBumpOrderCommand constructor",
)

// BumpOrderCommand represents the expo clearing a ready order from the board.
type BumpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBumpOrderCommand creates a command to bump an order.
func NewBumpOrderCommand(orderID kernel.UUID) (BumpOrderCommand, error) {
	bumpCommand := BumpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := bumpCommand.setOrderID(orderID); err != nil {
		return BumpOrderCommand{}, err
	}

	return bumpCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c BumpOrderCommand) Validate() error {
	return c.guard.Validate(ErrBumpOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to bump.
func (c BumpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *BumpOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
