package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetStationSummaryQueryIsNotConstructed = errors.New(
	"GetStationSummaryQuery must be created via NewGetStationSummaryQuery constructor",
)

// GetStationSummaryQuery retrieves per-station workload counts: tickets
// waiting for acknowledgment and tickets in preparation, for orders still
// occupying the kitchen.
type GetStationSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStationSummaryQuery creates a query for the station workload summary.
func NewGetStationSummaryQuery() GetStationSummaryQuery {
	return GetStationSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStationSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStationSummaryQueryIsNotConstructed)
}

// StationSummaryResponse represents one station's current workload.
type StationSummaryResponse struct {
	StationID      kernel.UUID
	Name           string
	PendingTickets int
	WorkingTickets int
}
