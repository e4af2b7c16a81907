package order

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoFirableItems is returned when Fire is called on an order whose items
	// are all cancelled or absent.
	ErrNoFirableItems = errors.New("order has no items to fire")

	// ErrCancelReasonIsRequired is returned when Cancel is called without a reason.
	ErrCancelReasonIsRequired = errors.New("cancel reason is required")
)

// numberPattern matches the ticket-facing order number: date plus a
// four-digit per-day sequence, e.g. "20260831-0042".
var numberPattern = regexp.MustCompile(`^\d{8}-\d{4}$`)

// FormatNumber builds the ticket-facing order number from the business date
// and the per-day sequence.
func FormatNumber(date time.Time, seq int) string {
	return fmt.Sprintf("%s-%04d", date.Format("20060102"), seq)
}

// Order is the aggregate root for a guest check moving through the kitchen.
// It owns its Items and coordinates the two state machines: the order
// lifecycle (Status) and the per-item lifecycle (ItemStatus).
//
// Order follows these invariants:
//   - Items can be added, removed or changed only while Open
//   - Fire freezes the item snapshot and resolves stations exactly once
//   - The order becomes Ready only when every non-cancelled item is Ready
//   - Bumped and Cancelled are terminal
//   - version supports optimistic concurrency in the store; a stale writer
//     never produces a second ticket set
type Order struct {
	id kernel.UUID

	// number is the ticket-facing order number, e.g. "20260831-0042"
	number string

	// tableRef identifies the table for dine-in orders, empty otherwise
	tableRef string

	orderType Type
	priority  Priority
	notes     string

	items []*Item

	status Status

	// fireSeq counts fire and reprint events; each ticket batch shares one value
	fireSeq int

	// version is the optimistic concurrency token managed by the store
	version int64

	createdAt   time.Time
	firedAt     *time.Time
	readyAt     *time.Time
	bumpedAt    *time.Time
	cancelledAt *time.Time

	cancelReason string

	isConstructed bool
}

// NewOrder creates a new Open order with no items. Items are attached with
// AddItem before firing.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - number: ticket-facing order number in "YYYYMMDD-NNNN" form
//   - tableRef: table reference, may be empty for takeaway/delivery
//   - orderType: dine-in, takeaway or delivery
//   - priority: normal, rush or VIP
//   - notes: free-form order notes
//   - createdAt: creation timestamp recorded on the order
func NewOrder(
	id kernel.UUID,
	number string,
	tableRef string,
	orderType Type,
	priority Priority,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		tableRef:      tableRef,
		notes:         notes,
		status:        Open,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setOrderType(orderType),
		order.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// It applies the same validation as NewOrder plus status validation.
func RestoreOrder(
	id kernel.UUID,
	number string,
	tableRef string,
	orderType Type,
	priority Priority,
	notes string,
	items []*Item,
	status Status,
	fireSeq int,
	version int64,
	createdAt time.Time,
	firedAt, readyAt, bumpedAt, cancelledAt *time.Time,
	cancelReason string,
) (*Order, error) {
	order, err := NewOrder(id, number, tableRef, orderType, priority, notes, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	order.items = items
	order.status = status
	order.fireSeq = fireSeq
	order.version = version
	order.firedAt = firedAt
	order.readyAt = readyAt
	order.bumpedAt = bumpedAt
	order.cancelledAt = cancelledAt
	order.cancelReason = cancelReason

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the ticket-facing order number.
func (o *Order) Number() string {
	return o.number
}

// TableRef returns the table reference, empty when not dine-in.
func (o *Order) TableRef() string {
	return o.tableRef
}

// OrderType returns the order's type.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Priority returns the order's priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Notes returns the free-form order notes.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order's items. The slice is shared with the aggregate;
// callers must not mutate it.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the owned item with the given id.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemID", itemID.String())
}

// Status returns the order's current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// FireSequence returns the number of fire and reprint events so far.
func (o *Order) FireSequence() int {
	return o.fireSeq
}

// NextFireSequence increments and returns the fire sequence. Each fire or
// reprint event consumes one value, shared by every ticket in that batch.
func (o *Order) NextFireSequence() int {
	o.fireSeq++
	return o.fireSeq
}

// Version returns the optimistic concurrency token.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// FiredAt returns when the order was fired, nil before.
func (o *Order) FiredAt() *time.Time {
	return o.firedAt
}

// ReadyAt returns when every item became ready, nil before.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// BumpedAt returns when the order was bumped, nil before.
func (o *Order) BumpedAt() *time.Time {
	return o.bumpedAt
}

// CancelledAt returns when the order was cancelled, nil otherwise.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancelReason returns the recorded cancellation reason, empty otherwise.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// IsOverdue reports whether the order has been in the kitchen longer than the
// given timeout without reaching a terminal or ready state. It never forces a
// transition; it is an observable flag for sweeps and dashboards.
func (o *Order) IsOverdue(timeout time.Duration, now time.Time) bool {
	if timeout <= 0 {
		return false
	}
	if !o.status.IsActive() {
		return false
	}
	return now.Sub(o.createdAt) > timeout
}

// AddItem attaches an item to an Open order.
// Fails with ErrInvalidTransition once the order has been fired.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !o.status.AllowsItemMutation() {
		return fmt.Errorf("%w: cannot add item to order in status %s", ErrInvalidTransition, o.status)
	}
	for _, existing := range o.items {
		if existing.IsEqual(item) {
			return errs.NewValueIsInvalidErrorWithCause(
				"item is invalid",
				fmt.Errorf("item %s is already part of the order", item.ID()),
			)
		}
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem detaches an item from an Open order.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if !o.status.AllowsItemMutation() {
		return fmt.Errorf("%w: cannot remove item from order in status %s", ErrInvalidTransition, o.status)
	}

	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("itemID", itemID.String())
}

// ChangeItemQuantity updates an item's quantity on an Open order.
func (o *Order) ChangeItemQuantity(itemID kernel.UUID, quantity int) error {
	if !o.status.AllowsItemMutation() {
		return fmt.Errorf("%w: cannot change items of order in status %s", ErrInvalidTransition, o.status)
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.changeQuantity(quantity)
}

// Fire freezes the item snapshot and dispatches the order to the kitchen.
//
// routes maps each non-cancelled item id to its resolved station set, as
// produced by the routing engine against a consistent rule snapshot. Every
// non-cancelled item must have a non-empty entry. On success the order is
// Fired, each item is Fired with its stations recorded, and firedAt is set.
func (o *Order) Fire(routes map[kernel.UUID][]kernel.UUID, now time.Time) error {
	newStatus, err := o.status.Fire()
	if err != nil {
		return err
	}

	firable := o.firableItems()
	if len(firable) == 0 {
		return ErrNoFirableItems
	}

	for _, item := range firable {
		stationIDs, ok := routes[item.ID()]
		if !ok || len(stationIDs) == 0 {
			return errs.NewValueIsRequiredErrorWithCause(
				"routes",
				fmt.Errorf("item %s has no resolved station", item.ID()),
			)
		}
	}

	for _, item := range firable {
		if err = item.fire(routes[item.ID()], now); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.firedAt = &now
	return nil
}

// Ack records a station acknowledgment for the given items. The first ack
// moves the order from Fired to InProgress; later acks only affect their
// items. Acked items move to Preparing.
func (o *Order) Ack(itemIDs []kernel.UUID, now time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	for _, itemID := range itemIDs {
		item, err := o.Item(itemID)
		if err != nil {
			return err
		}
		if item.IsCancelled() {
			continue
		}
		if err = item.start(now); err != nil {
			return err
		}
	}

	o.status = newStatus
	return nil
}

// StartItem moves a single item to Preparing. Promotes a Fired order to
// InProgress, mirroring a station ack for that item alone.
func (o *Order) StartItem(itemID kernel.UUID, now time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	if err = item.start(now); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkItemReady moves a single item to Ready. When every non-cancelled item is
// ready, the order auto-transitions to Ready and records readyAt. A cook may
// ready an item on a Fired order before any ack; the order is promoted to
// InProgress first.
func (o *Order) MarkItemReady(itemID kernel.UUID, now time.Time) error {
	if o.status == Fired {
		newStatus, err := o.status.Start()
		if err != nil {
			return err
		}
		o.status = newStatus
	}
	if o.status != InProgress {
		return fmt.Errorf("%w: cannot ready item of order in status %s", ErrInvalidTransition, o.status)
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	if err = item.markReady(now); err != nil {
		return err
	}

	o.refreshReadiness(now)
	return nil
}

// CancelItem removes a single item from production. The order itself stays in
// its current state; when the cancellation makes every remaining item ready,
// the order auto-transitions to Ready.
func (o *Order) CancelItem(itemID kernel.UUID, now time.Time) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: cannot cancel item of order in status %s", ErrInvalidTransition, o.status)
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	if err = item.cancel(); err != nil {
		return err
	}

	o.refreshReadiness(now)
	return nil
}

// Bump marks the Ready order as served and moves its ready items to Served.
func (o *Order) Bump(now time.Time) error {
	newStatus, err := o.status.Bump()
	if err != nil {
		return err
	}

	for _, item := range o.items {
		if item.Status() != ItemReady {
			continue
		}
		if err = item.serve(); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.bumpedAt = &now
	return nil
}

// Recall returns a Ready order to the kitchen: the order goes back to
// InProgress, readyAt is cleared, and ready items go back to Preparing.
func (o *Order) Recall(now time.Time) error {
	newStatus, err := o.status.Recall()
	if err != nil {
		return err
	}

	for _, item := range o.items {
		if item.Status() != ItemReady {
			continue
		}
		if err = item.recall(); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.readyAt = nil
	return nil
}

// Cancel cancels the whole order with a reason. Only Open and Fired orders can
// be cancelled; every non-terminal item inherits the cancellation. Cancelling
// an already Cancelled order is a no-op success.
func (o *Order) Cancel(reason string, now time.Time) error {
	if o.status == Cancelled {
		return nil
	}
	if reason == "" {
		return ErrCancelReasonIsRequired
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	for _, item := range o.items {
		if item.Status().IsTerminal() {
			continue
		}
		if err = item.cancel(); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.cancelledAt = &now
	o.cancelReason = reason
	return nil
}

// firableItems returns the non-cancelled items in insertion order.
func (o *Order) firableItems() []*Item {
	items := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		if item.IsCancelled() {
			continue
		}
		items = append(items, item)
	}
	return items
}

// refreshReadiness promotes an InProgress order to Ready when every
// non-cancelled item is Ready. It is the guard that makes order readiness a
// derived fact rather than a settable flag.
func (o *Order) refreshReadiness(now time.Time) {
	if o.status != InProgress {
		return
	}

	sawReady := false
	for _, item := range o.items {
		if item.IsCancelled() {
			continue
		}
		if item.Status() != ItemReady {
			return
		}
		sawReady = true
	}
	if !sawReady {
		return
	}

	o.status = Ready
	o.readyAt = &now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if !numberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause(
			"number is invalid",
			fmt.Errorf("%q does not match YYYYMMDD-NNNN", number),
		)
	}
	o.number = number
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}
