package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrListStationsQueryIsNotConstructed = errors.New(
	"ListStationsQuery must be created via NewListStationsQuery constructor",
)

// ListStationsQuery retrieves the station registry ordered for display.
type ListStationsQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewListStationsQuery creates a query for the station registry. With
// activeOnly set, deactivated stations are excluded.
func NewListStationsQuery(activeOnly bool) ListStationsQuery {
	return ListStationsQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListStationsQuery) Validate() error {
	return q.guard.Validate(ErrListStationsQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated stations are excluded.
func (q ListStationsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// StationResponse represents one station in the read model.
type StationResponse struct {
	ID        kernel.UUID
	Name      string
	Tags      []string
	Active    bool
	SortOrder int
}
