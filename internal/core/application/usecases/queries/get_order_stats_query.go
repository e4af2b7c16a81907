package queries

import (
	"errors"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
	ErrStatsRangeIsInvalid = errors.New("stats range end must be after start")
)

// GetOrderStatsQuery retrieves per-day order throughput for a date range:
// totals, cancellations, completed orders and average preparation time.
type GetOrderStatsQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a stats query for the half-open range
// [from, to).
func NewGetOrderStatsQuery(from, to time.Time) (GetOrderStatsQuery, error) {
	query := GetOrderStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRange(from, to); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// From returns the inclusive range start.
func (q GetOrderStatsQuery) From() time.Time {
	return q.from
}

// To returns the exclusive range end.
func (q GetOrderStatsQuery) To() time.Time {
	return q.to
}

func (q *GetOrderStatsQuery) setRange(from, to time.Time) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return errs.NewValueIsRequiredError("to")
	}
	if !to.After(from) {
		return ErrStatsRangeIsInvalid
	}

	q.from = from
	q.to = to
	return nil
}

// DailyOrderStatsResponse represents one business day's throughput.
type DailyOrderStatsResponse struct {
	Day             time.Time
	TotalOrders     int
	BumpedOrders    int
	CancelledOrders int
	AvgPrepMinutes  float64
}
