package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for station aggregates.
type StationRepository interface {
	// Add persists a new station.
	Add(ctx context.Context, aggregate *station.Station) error

	// Update persists changes to an existing station.
	Update(ctx context.Context, aggregate *station.Station) error

	// Get retrieves a station by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*station.Station, error)

	// GetByName retrieves a station by its display name.
	// Returns a not-found error when no station carries the name.
	GetByName(ctx context.Context, name string) (*station.Station, error)

	// GetAll retrieves stations ordered by sort order then name.
	// With activeOnly set, deactivated stations are excluded.
	GetAll(ctx context.Context, activeOnly bool) ([]*station.Station, error)
}
