package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListStationsQueryHandler retrieves the station registry from the database.
type ListStationsQueryHandler struct {
	db *gorm.DB
}

// NewListStationsQueryHandler creates a handler for station registry queries.
func NewListStationsQueryHandler(db *gorm.DB) ListStationsQueryHandler {
	return ListStationsQueryHandler{db: db}
}

// Handle executes the query. Stations come back in display order.
func (h ListStationsQueryHandler) Handle(
	ctx context.Context,
	query ListStationsQuery,
) ([]StationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, name, tags, active, sort_order
		FROM stations
	`
	if query.ActiveOnly() {
		sql += ` WHERE active`
	}
	sql += ` ORDER BY sort_order, name`

	stations := make([]StationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StationResponse
		var id uuid.UUID
		var tags []byte

		err = rows.Scan(&id, &resp.Name, &tags, &resp.Active, &resp.SortOrder)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Tags, err = parseStringList(tags); err != nil {
			return nil, err
		}

		stations = append(stations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
