package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetStationTicketsQueryIsNotConstructed = errors.New(
	"GetStationTicketsQuery must be created via NewGetStationTicketsQuery constructor",
)

// GetStationTicketsQuery retrieves the ticket queue of one station: tickets
// of orders still cooking, VIP orders first, then oldest first.
type GetStationTicketsQuery struct { //nolint:recvcheck //using for validation
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStationTicketsQuery creates a query for a station's ticket queue.
func NewGetStationTicketsQuery(stationID kernel.UUID) (GetStationTicketsQuery, error) {
	query := GetStationTicketsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStationID(stationID); err != nil {
		return GetStationTicketsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStationTicketsQuery) Validate() error {
	return q.guard.Validate(ErrGetStationTicketsQueryIsNotConstructed)
}

// StationID returns the station whose queue is requested.
func (q GetStationTicketsQuery) StationID() kernel.UUID {
	return q.stationID
}

func (q *GetStationTicketsQuery) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	q.stationID = stationID
	return nil
}

// StationTicketResponse represents one ticket in a station's queue.
type StationTicketResponse struct {
	TicketID    kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	TableRef    string
	Priority    string
	FireSeq     int
	PrintStatus string
	Acked       bool
	CreatedAt   time.Time
}
