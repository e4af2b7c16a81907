package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an order or item is asked to move to a
// state its current state does not allow. Callers can detect it with errors.Is.
var ErrInvalidTransition = errors.New("invalid state transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// kitchen workflow.
//
// State transitions:
//
//	Open ──> Fired ──> InProgress ──> Ready ──> Bumped
//	  │        │            ^           │
//	  │        │            └──recall───┘
//	  └────────┴──> Cancelled
//
// Bumped and Cancelled are terminal. Status is a value object that validates
// transitions and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status. Items may still be added, removed or changed.
	Open

	// Fired indicates tickets have been dispatched to stations and no station
	// has acknowledged yet. The item snapshot is frozen.
	Fired

	// InProgress indicates at least one station acknowledged its ticket.
	InProgress

	// Ready indicates every non-cancelled item is ready for service.
	Ready

	// Bumped indicates the order left the kitchen. Terminal.
	Bumped

	// Cancelled indicates the order was cancelled before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "Open",
		Fired:      "Fired",
		InProgress: "InProgress",
		Ready:      "Ready",
		Bumped:     "Bumped",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "Open",
		Fired:      "Fired",
		InProgress: "InProgress",
		Ready:      "Ready",
		Bumped:     "Bumped",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a persisted status name back into a Status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Bumped || s == Cancelled
}

// IsActive reports whether the order still occupies the kitchen:
// Open, Fired or InProgress.
func (s Status) IsActive() bool {
	return s == Open || s == Fired || s == InProgress
}

// AllowsItemMutation reports whether items may be added, removed or changed.
// Only Open orders allow mutation: a fired snapshot never silently changes.
func (s Status) AllowsItemMutation() bool {
	return s == Open
}

// Fire transitions the status to Fired.
//
// Valid transitions:
//   - Open -> Fired
//
// Any other starting state, including a second fire of an already Fired
// order, returns ErrInvalidTransition.
func (s Status) Fire() (Status, error) {
	if s != Open {
		return Unknown, fmt.Errorf("%w: cannot fire order in status %s", ErrInvalidTransition, s)
	}
	return Fired, nil
}

// Start transitions the status to InProgress on the first station
// acknowledgment.
//
// Valid transitions:
//   - Fired -> InProgress
//   - InProgress -> InProgress (further acks are no-ops)
func (s Status) Start() (Status, error) {
	if s != Fired && s != InProgress {
		return Unknown, fmt.Errorf("%w: cannot start order in status %s", ErrInvalidTransition, s)
	}
	return InProgress, nil
}

// MarkReady transitions the status to Ready once every non-cancelled item is
// ready. The readiness guard over items lives in Order; this method only
// checks the state machine.
//
// Valid transitions:
//   - InProgress -> Ready
func (s Status) MarkReady() (Status, error) {
	if s != InProgress {
		return Unknown, fmt.Errorf("%w: cannot mark ready order in status %s", ErrInvalidTransition, s)
	}
	return Ready, nil
}

// Bump transitions the status to Bumped, the terminal served state.
//
// Valid transitions:
//   - Ready -> Bumped
func (s Status) Bump() (Status, error) {
	if s != Ready {
		return Unknown, fmt.Errorf("%w: cannot bump order in status %s", ErrInvalidTransition, s)
	}
	return Bumped, nil
}

// Recall transitions a Ready order back to InProgress, returning it to the
// kitchen.
//
// Valid transitions:
//   - Ready -> InProgress
func (s Status) Recall() (Status, error) {
	if s != Ready {
		return Unknown, fmt.Errorf("%w: cannot recall order in status %s", ErrInvalidTransition, s)
	}
	return InProgress, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Open -> Cancelled
//   - Fired -> Cancelled
//
// Cancelling an InProgress, Ready or Bumped order is not allowed; the food is
// already being made or made. Idempotency for already Cancelled orders is
// handled by Order.Cancel, not here.
func (s Status) Cancel() (Status, error) {
	if s != Open && s != Fired {
		return Unknown, fmt.Errorf("%w: cannot cancel order in status %s", ErrInvalidTransition, s)
	}
	return Cancelled, nil
}
