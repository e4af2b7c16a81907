package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Priority controls ticket ordering on station screens. Higher priorities are
// worked first; within a priority, tickets are worked oldest first.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// Normal is the default priority.
	Normal

	// Rush orders jump ahead of normal ones.
	Rush

	// VIP orders are worked before everything else.
	VIP
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		Normal:          "Normal",
		Rush:            "Rush",
		VIP:             "VIP",
	}
}

func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		Normal: "Normal",
		Rush:   "Rush",
		VIP:    "VIP",
	}
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PriorityFromString parses a persisted priority name back into a Priority.
func PriorityFromString(value string) (Priority, error) {
	for priority, str := range getValidPriorityStrings() {
		if str == value {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid",
		fmt.Errorf("%q is not a valid priority", value),
	)
}
