package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTableRefIsRequired = errors.New("table reference is required")
	ErrOrderHasNoItems    = errors.New("order must contain at least one item")
)

// CreateOrderCommand represents a request to open a new order with its
// initial set of items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "T12", order.DineIn, order.Normal, "", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, engine, dispatcher, publisher, false)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	tableRef  string
	orderType order.Type
	priority  order.Priority
	notes     string
	items     []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates the order id, the table reference, the type, the priority and
// every submitted item spec.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tableRef string,
	orderType order.Type,
	priority order.Priority,
	notes string,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTableRef(tableRef),
		orderCommand.setOrderType(orderType),
		orderCommand.setPriority(priority),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableRef returns the table or tab reference for the order.
func (c CreateOrderCommand) TableRef() string {
	return c.tableRef
}

// OrderType returns the service type of the order.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Priority returns the kitchen priority of the order.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// Notes returns free-form notes attached to the whole order.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the initial item specs of the order.
func (c CreateOrderCommand) Items() []ItemSpec {
	items := make([]ItemSpec, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableRef(tableRef string) error {
	if tableRef == "" {
		return ErrTableRefIsRequired
	}

	c.tableRef = tableRef
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}

	c.items = make([]ItemSpec, len(items))
	copy(c.items, items)
	return nil
}
