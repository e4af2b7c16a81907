package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Type classifies how an order reaches the guest. It affects display and
// reporting, not routing.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// DineIn orders are served at a table and usually carry a table reference.
	DineIn

	// Takeaway orders are picked up at the counter.
	Takeaway

	// Delivery orders leave the building with a courier.
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		DineIn:      "DineIn",
		Takeaway:    "Takeaway",
		Delivery:    "Delivery",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		DineIn:   "DineIn",
		Takeaway: "Takeaway",
		Delivery: "Delivery",
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses a persisted order type name back into a Type.
func TypeFromString(value string) (Type, error) {
	for orderType, str := range getValidTypeStrings() {
		if str == value {
			return orderType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order type is invalid",
		fmt.Errorf("%q is not a valid order type", value),
	)
}
