package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse represents one order line in the read model.
type OrderItemResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	Name        string
	Category    string
	Quantity    int
	Modifiers   []string
	Notes       string
	Seat        *int
	Status      string
	StationIDs  []kernel.UUID
	FiredAt     *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// GetOrderQueryResponse represents a full order in the read model.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	Number       string
	TableRef     string
	OrderType    string
	Priority     string
	Notes        string
	Status       string
	CreatedAt    time.Time
	FiredAt      *time.Time
	ReadyAt      *time.Time
	BumpedAt     *time.Time
	CancelledAt  *time.Time
	CancelReason string
	Items        []OrderItemResponse
}
