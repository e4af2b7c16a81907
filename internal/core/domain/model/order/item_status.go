package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// ItemStatus represents the lifecycle state of a single order item. Items move
// independently of each other; the order status constrains which item
// transitions are reachable (items only fire when the order fires, for
// example) but the two machines are separate.
//
// State transitions:
//
//	ItemPending ──> ItemFired ──> ItemPreparing ──> ItemReady ──> ItemServed
//	     │              │    └───────────────────────^  │
//	     │              │            (direct bump)  recall
//	     └──────────────┴──────────────> ItemCancelled
//
// ItemServed and ItemCancelled are terminal.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemPending is the initial status before the order is fired.
	ItemPending

	// ItemFired indicates the item appears on a dispatched ticket.
	ItemFired

	// ItemPreparing indicates the station acknowledged and is working the item.
	ItemPreparing

	// ItemReady indicates the item is done and waiting for service.
	ItemReady

	// ItemServed indicates the item left the pass. Terminal.
	ItemServed

	// ItemCancelled indicates the item was removed from production. Terminal.
	ItemCancelled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "Unknown",
		ItemPending:       "Pending",
		ItemFired:         "Fired",
		ItemPreparing:     "Preparing",
		ItemReady:         "Ready",
		ItemServed:        "Served",
		ItemCancelled:     "Cancelled",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemPending:   "Pending",
		ItemFired:     "Fired",
		ItemPreparing: "Preparing",
		ItemReady:     "Ready",
		ItemServed:    "Served",
		ItemCancelled: "Cancelled",
	}
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("%d is not a valid item status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ItemStatusFromString parses a persisted item status name back into an
// ItemStatus.
func ItemStatusFromString(value string) (ItemStatus, error) {
	for status, str := range getValidItemStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status is invalid",
		fmt.Errorf("%q is not a valid item status", value),
	)
}

// IsTerminal reports whether no further transitions are possible.
func (s ItemStatus) IsTerminal() bool {
	return s == ItemServed || s == ItemCancelled
}

// Fire transitions the item to ItemFired when its order's tickets are
// dispatched.
//
// Valid transitions:
//   - ItemPending -> ItemFired
func (s ItemStatus) Fire() (ItemStatus, error) {
	if s != ItemPending {
		return ItemStatusUnknown, fmt.Errorf("%w: cannot fire item in status %s", ErrInvalidTransition, s)
	}
	return ItemFired, nil
}

// Start transitions the item to ItemPreparing on station acknowledgment.
//
// Valid transitions:
//   - ItemFired -> ItemPreparing
//   - ItemPreparing -> ItemPreparing (repeated acks are no-ops)
func (s ItemStatus) Start() (ItemStatus, error) {
	if s != ItemFired && s != ItemPreparing {
		return ItemStatusUnknown, fmt.Errorf("%w: cannot start item in status %s", ErrInvalidTransition, s)
	}
	return ItemPreparing, nil
}

// MarkReady transitions the item to ItemReady.
//
// Valid transitions:
//   - ItemPreparing -> ItemReady
//   - ItemFired -> ItemReady (a cook may bump an item before any ack)
func (s ItemStatus) MarkReady() (ItemStatus, error) {
	if s != ItemPreparing && s != ItemFired {
		return ItemStatusUnknown, fmt.Errorf("%w: cannot mark ready item in status %s", ErrInvalidTransition, s)
	}
	return ItemReady, nil
}

// Serve transitions the item to ItemServed when the order is bumped.
//
// Valid transitions:
//   - ItemReady -> ItemServed
func (s ItemStatus) Serve() (ItemStatus, error) {
	if s != ItemReady {
		return ItemStatusUnknown, fmt.Errorf("%w: cannot serve item in status %s", ErrInvalidTransition, s)
	}
	return ItemServed, nil
}

// Recall transitions a ready item back to ItemPreparing.
//
// Valid transitions:
//   - ItemReady -> ItemPreparing
func (s ItemStatus) Recall() (ItemStatus, error) {
	if s != ItemReady {
		return ItemStatusUnknown, fmt.Errorf("%w: cannot recall item in status %s", ErrInvalidTransition, s)
	}
	return ItemPreparing, nil
}

// Cancel transitions the item to ItemCancelled.
//
// Valid from any non-terminal status. Cancelling an already cancelled item is
// a no-op; cancelling a served item is not allowed.
func (s ItemStatus) Cancel() (ItemStatus, error) {
	if s == ItemCancelled {
		return ItemCancelled, nil
	}
	if s == ItemServed {
		return ItemStatusUnknown, fmt.Errorf("%w: cannot cancel item in status %s", ErrInvalidTransition, s)
	}
	if err := s.Validate(); err != nil {
		return ItemStatusUnknown, err
	}
	return ItemCancelled, nil
}
