package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
	"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
)

// UpdateItemStatusCommand represents a cook advancing an item on their
// station screen. Only the cook-driven targets are accepted: preparing
// (started) and ready (bumped at the station).
type UpdateItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	target  order.ItemStatus

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a command to advance an item status.
func NewUpdateItemStatusCommand(
	orderID, itemID kernel.UUID,
	target order.ItemStatus,
) (UpdateItemStatusCommand, error) {
	statusCommand := UpdateItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setItemID(itemID),
		statusCommand.setTarget(target),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c UpdateItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to advance.
func (c UpdateItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Target returns the requested item status.
func (c UpdateItemStatusCommand) Target() order.ItemStatus {
	return c.target
}

func (c *UpdateItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemStatusCommand) setTarget(target order.ItemStatus) error {
	if target != order.ItemPreparing && target != order.ItemReady {
		return errs.NewValueIsInvalidError("target")
	}

	c.target = target
	return nil
}
