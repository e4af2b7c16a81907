package ticket

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrTicketIsNotConstructed is returned when a Ticket instance was not created
	// through the NewTicket or RestoreTicket factory methods.
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")
)

// Ticket is the unit of work sent to one station for one fire event. It
// snapshots the item ids it covers; the snapshot never changes after creation,
// so a reprint is a new Ticket with the same snapshot and a higher fire
// sequence.
//
// Ticket follows these invariants:
//   - Must reference a valid order, station and at least one item
//   - Fire sequence is positive and monotonic per order
//   - Acknowledgment is idempotent and recorded once
type Ticket struct {
	id        kernel.UUID
	orderID   kernel.UUID
	stationID kernel.UUID

	// itemIDs is the immutable item snapshot for this fire event
	itemIDs []kernel.UUID

	// fireSeq is the order-scoped fire event number this ticket belongs to
	fireSeq int

	printStatus PrintStatus

	acked   bool
	ackedAt *time.Time

	createdAt time.Time

	isConstructed bool
}

// NewTicket creates a new unacked Ticket with print status pending.
func NewTicket(
	id kernel.UUID,
	orderID kernel.UUID,
	stationID kernel.UUID,
	itemIDs []kernel.UUID,
	fireSeq int,
	createdAt time.Time,
) (*Ticket, error) {
	ticket := &Ticket{
		printStatus:   PrintPending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		ticket.setID(id),
		ticket.setOrderID(orderID),
		ticket.setStationID(stationID),
		ticket.setItemIDs(itemIDs),
		ticket.setFireSeq(fireSeq),
	); err != nil {
		return nil, err
	}

	return ticket, nil
}

// RestoreTicket reconstructs a Ticket from persistence with its full state.
func RestoreTicket(
	id kernel.UUID,
	orderID kernel.UUID,
	stationID kernel.UUID,
	itemIDs []kernel.UUID,
	fireSeq int,
	printStatus PrintStatus,
	acked bool,
	ackedAt *time.Time,
	createdAt time.Time,
) (*Ticket, error) {
	ticket, err := NewTicket(id, orderID, stationID, itemIDs, fireSeq, createdAt)
	if err != nil {
		return nil, err
	}

	if err = printStatus.Validate(); err != nil {
		return nil, err
	}

	ticket.printStatus = printStatus
	ticket.acked = acked
	ticket.ackedAt = ackedAt

	return ticket, nil
}

// Validate ensures the Ticket instance was properly constructed.
func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}

	return nil
}

// IsEqual compares two tickets by their unique identifiers.
func (t *Ticket) IsEqual(other *Ticket) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the ticket's unique identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// OrderID returns the id of the order this ticket belongs to.
func (t *Ticket) OrderID() kernel.UUID {
	return t.orderID
}

// StationID returns the id of the station this ticket was dispatched to.
func (t *Ticket) StationID() kernel.UUID {
	return t.stationID
}

// ItemIDs returns a copy of the immutable item snapshot.
func (t *Ticket) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(t.itemIDs))
	copy(ids, t.itemIDs)
	return ids
}

// FireSeq returns the order-scoped fire event number.
func (t *Ticket) FireSeq() int {
	return t.fireSeq
}

// PrintStatus returns the ticket's print status.
func (t *Ticket) PrintStatus() PrintStatus {
	return t.printStatus
}

// IsAcked reports whether the station acknowledged the ticket.
func (t *Ticket) IsAcked() bool {
	return t.acked
}

// AckedAt returns when the station acknowledged, nil before.
func (t *Ticket) AckedAt() *time.Time {
	return t.ackedAt
}

// CreatedAt returns when the ticket was dispatched.
func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// Ack records the station acknowledgment. Repeated acks are no-ops and keep
// the original timestamp.
func (t *Ticket) Ack(now time.Time) {
	if t.acked {
		return
	}
	t.acked = true
	t.ackedAt = &now
}

// MarkPrinted records the printer's success acknowledgment.
func (t *Ticket) MarkPrinted() error {
	newStatus, err := t.printStatus.MarkPrinted()
	if err != nil {
		return err
	}
	t.printStatus = newStatus
	return nil
}

// MarkPrintFailed records a printer failure. The ticket can still be printed
// by a later retry.
func (t *Ticket) MarkPrintFailed() error {
	newStatus, err := t.printStatus.MarkFailed()
	if err != nil {
		return err
	}
	t.printStatus = newStatus
	return nil
}

func (t *Ticket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Ticket) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Ticket) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}
	t.stationID = stationID
	return nil
}

func (t *Ticket) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("itemIDs")
	}
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}
	t.itemIDs = append([]kernel.UUID(nil), itemIDs...)
	return nil
}

func (t *Ticket) setFireSeq(fireSeq int) error {
	if fireSeq < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"fireSeq is invalid",
			fmt.Errorf("%d is not at least 1", fireSeq),
		)
	}
	t.fireSeq = fireSeq
	return nil
}
