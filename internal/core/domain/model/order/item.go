package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrItemAlreadyRouted is returned when routing results are applied to an
	// item that already carries resolved stations. Resolved stations are
	// immutable after fire.
	ErrItemAlreadyRouted = errors.New("item stations are already resolved")
)

// Item is an order line owned by the Order aggregate. It snapshots the product
// name, category and tags at ordering time so later menu edits never change a
// fired ticket.
//
// Item satisfies routing matchers structurally through its ProductID, Category
// and Tags accessors.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID

	// name is the product name snapshot printed on tickets
	name     string
	category string
	tags     []string

	quantity  int
	modifiers []string
	notes     string

	// seat is the guest position at the table, nil when not tracked
	seat *int

	status ItemStatus

	// stationIDs are set once at fire and immutable afterwards
	stationIDs []kernel.UUID

	firedAt     *time.Time
	startedAt   *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewItem creates a new pending Item with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - productID: menu product reference (must be a valid UUID)
//   - name: product name snapshot (must not be empty)
//   - category: menu category snapshot, may be empty
//   - tags: product tag snapshot used by tag routing rules
//   - quantity: ordered count (must be at least 1)
//   - modifiers: preparation modifiers in guest order
//   - notes: free-form kitchen notes
//   - seat: guest seat number, nil when not tracked (must be positive when set)
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	category string,
	tags []string,
	quantity int,
	modifiers []string,
	notes string,
	seat *int,
) (*Item, error) {
	item := &Item{
		category:      category,
		notes:         notes,
		status:        ItemPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setSeat(seat),
	); err != nil {
		return nil, err
	}

	item.tags = append([]string(nil), tags...)
	item.modifiers = append([]string(nil), modifiers...)

	return item, nil
}

// RestoreItem reconstructs an Item from persistence with its full state.
// It applies the same validation as NewItem plus status validation.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	category string,
	tags []string,
	quantity int,
	modifiers []string,
	notes string,
	seat *int,
	status ItemStatus,
	stationIDs []kernel.UUID,
	firedAt, startedAt, completedAt *time.Time,
) (*Item, error) {
	item, err := NewItem(id, productID, name, category, tags, quantity, modifiers, notes, seat)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	item.status = status
	item.stationIDs = append([]kernel.UUID(nil), stationIDs...)
	item.firedAt = firedAt
	item.startedAt = startedAt
	item.completedAt = completedAt

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the menu product reference.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i *Item) Name() string {
	return i.name
}

// Category returns the menu category snapshot.
func (i *Item) Category() string {
	return i.category
}

// Tags returns a copy of the product tag snapshot.
func (i *Item) Tags() []string {
	tags := make([]string, len(i.tags))
	copy(tags, i.tags)
	return tags
}

// Quantity returns the ordered count.
func (i *Item) Quantity() int {
	return i.quantity
}

// Modifiers returns a copy of the preparation modifiers.
func (i *Item) Modifiers() []string {
	modifiers := make([]string, len(i.modifiers))
	copy(modifiers, i.modifiers)
	return modifiers
}

// Notes returns the free-form kitchen notes.
func (i *Item) Notes() string {
	return i.notes
}

// Seat returns the guest seat number, nil when not tracked.
func (i *Item) Seat() *int {
	return i.seat
}

// Status returns the item's current lifecycle status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// StationIDs returns a copy of the stations resolved at fire time.
// Empty until the order is fired.
func (i *Item) StationIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(i.stationIDs))
	copy(ids, i.stationIDs)
	return ids
}

// FiredAt returns when the item was fired, nil before.
func (i *Item) FiredAt() *time.Time {
	return i.firedAt
}

// StartedAt returns when a station started the item, nil before.
func (i *Item) StartedAt() *time.Time {
	return i.startedAt
}

// CompletedAt returns when the item became ready, nil before.
func (i *Item) CompletedAt() *time.Time {
	return i.completedAt
}

// IsCancelled reports whether the item was removed from production.
func (i *Item) IsCancelled() bool {
	return i.status == ItemCancelled
}

func (i *Item) changeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *Item) fire(stationIDs []kernel.UUID, now time.Time) error {
	if len(i.stationIDs) > 0 {
		return ErrItemAlreadyRouted
	}
	if len(stationIDs) == 0 {
		return errs.NewValueIsRequiredError("stationIDs")
	}

	newStatus, err := i.status.Fire()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.stationIDs = append([]kernel.UUID(nil), stationIDs...)
	i.firedAt = &now
	return nil
}

func (i *Item) start(now time.Time) error {
	newStatus, err := i.status.Start()
	if err != nil {
		return err
	}

	if i.startedAt == nil {
		i.startedAt = &now
	}
	i.status = newStatus
	return nil
}

func (i *Item) markReady(now time.Time) error {
	newStatus, err := i.status.MarkReady()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.completedAt = &now
	return nil
}

func (i *Item) serve() error {
	newStatus, err := i.status.Serve()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

func (i *Item) recall() error {
	newStatus, err := i.status.Recall()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.completedAt = nil
	return nil
}

func (i *Item) cancel() error {
	newStatus, err := i.status.Cancel()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setSeat(seat *int) error {
	if seat != nil && *seat < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"seat is invalid",
			fmt.Errorf("%d is not at least 1", *seat),
		)
	}
	i.seat = seat
	return nil
}
