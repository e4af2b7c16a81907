package ticket

import (
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// PrintStatus tracks the physical printing of a ticket. Printing is driven by
// an external print service; the kitchen only records its acknowledgments.
//
// State transitions:
//
//	PrintPending ──> Printed
//	     │              ^
//	     └──> PrintFailed (retryable)
type PrintStatus int

const (
	// PrintStatusUnknown represents an invalid or undefined print status.
	PrintStatusUnknown PrintStatus = iota

	// PrintPending is the initial status while the ticket waits for the printer.
	PrintPending

	// Printed indicates the printer confirmed the ticket. Terminal.
	Printed

	// PrintFailed indicates the printer reported a failure. A retry may still
	// move the ticket to Printed.
	PrintFailed
)

func getPrintStatusStrings() map[PrintStatus]string {
	return map[PrintStatus]string{
		PrintStatusUnknown: "Unknown",
		PrintPending:       "Pending",
		Printed:            "Printed",
		PrintFailed:        "Failed",
	}
}

func getValidPrintStatusStrings() map[PrintStatus]string {
	//nolint:exhaustive // PrintStatusUnknown is intentionally excluded as it's invalid
	return map[PrintStatus]string{
		PrintPending: "Pending",
		Printed:      "Printed",
		PrintFailed:  "Failed",
	}
}

// Validate checks if the PrintStatus value is valid.
func (s PrintStatus) Validate() error {
	if _, ok := getValidPrintStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"print status is invalid",
			fmt.Errorf("%d is not a valid print status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the print status.
func (s PrintStatus) String() string {
	if str, ok := getPrintStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// PrintStatusFromString parses a persisted print status name back into a
// PrintStatus.
func PrintStatusFromString(value string) (PrintStatus, error) {
	for status, str := range getValidPrintStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return PrintStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"print status is invalid",
		fmt.Errorf("%q is not a valid print status", value),
	)
}

// MarkPrinted transitions the status to Printed.
//
// Valid transitions:
//   - PrintPending -> Printed
//   - PrintFailed -> Printed (retry succeeded)
func (s PrintStatus) MarkPrinted() (PrintStatus, error) {
	if s != PrintPending && s != PrintFailed {
		return PrintStatusUnknown, fmt.Errorf(
			"%w: cannot mark printed ticket in print status %s", order.ErrInvalidTransition, s,
		)
	}
	return Printed, nil
}

// MarkFailed transitions the status to PrintFailed.
//
// Valid transitions:
//   - PrintPending -> PrintFailed
//   - PrintFailed -> PrintFailed (repeated failures are no-ops)
func (s PrintStatus) MarkFailed() (PrintStatus, error) {
	if s != PrintPending && s != PrintFailed {
		return PrintStatusUnknown, fmt.Errorf(
			"%w: cannot mark failed ticket in print status %s", order.ErrInvalidTransition, s,
		)
	}
	return PrintFailed, nil
}
