package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// ItemSpec describes one order line as submitted by the POS. It is a plain
// request value shared by CreateOrderCommand and AddOrderItemCommand; the
// domain Item is built from it inside the handlers.
type ItemSpec struct {
	ProductID kernel.UUID
	Name      string
	Category  string
	Tags      []string
	Quantity  int
	Modifiers []string
	Notes     string
	Seat      *int
}

// Validate checks the spec's fields without constructing the domain item.
func (s ItemSpec) Validate() error {
	return errors.Join(
		s.ProductID.Validate(),
		validateItemName(s.Name),
		validateItemQuantity(s.Quantity),
	)
}

func validateItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func validateItemQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	return nil
}

// buildItem constructs a new domain item from the spec with a fresh id.
func (s ItemSpec) buildItem() (*order.Item, error) {
	return order.NewItem(
		kernel.NewUUID(),
		s.ProductID,
		s.Name,
		s.Category,
		s.Tags,
		s.Quantity,
		s.Modifiers,
		s.Notes,
		s.Seat,
	)
}
