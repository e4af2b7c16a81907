package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their items; loading an order always loads the full
// aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// aggregate's version. A concurrent writer that raced ahead surfaces as a
	// retryable conflict error; the loser's changes are never applied.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves orders still occupying the kitchen:
	// Open, Fired and InProgress, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetByTable retrieves the orders for a table reference, newest first.
	GetByTable(ctx context.Context, tableRef string) ([]*order.Order, error)

	// NextDailySequence reserves the next per-day order number sequence for
	// the given business date.
	NextDailySequence(ctx context.Context, date time.Time) (int, error)
}
