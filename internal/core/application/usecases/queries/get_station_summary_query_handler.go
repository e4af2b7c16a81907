package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationSummaryQueryHandler computes the station workload summary from
// the database. Tickets of finished orders drop out of the counts.
type GetStationSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetStationSummaryQueryHandler creates a handler for workload summaries.
func NewGetStationSummaryQueryHandler(db *gorm.DB) GetStationSummaryQueryHandler {
	return GetStationSummaryQueryHandler{db: db}
}

// Handle executes the query over active stations in display order.
func (h GetStationSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetStationSummaryQuery,
) ([]StationSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]StationSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			COUNT(t.id) FILTER (WHERE NOT t.acked) AS pending_tickets,
			COUNT(t.id) FILTER (WHERE t.acked) AS working_tickets
		FROM stations s
		LEFT JOIN tickets t ON t.station_id = s.id
			AND t.order_id IN (
				SELECT id FROM orders WHERE status IN (?, ?)
			)
		WHERE s.active
		GROUP BY s.id, s.name, s.sort_order
		ORDER BY s.sort_order, s.name
	`, order.Fired.String(), order.InProgress.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StationSummaryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Name, &resp.PendingTickets, &resp.WorkingTickets)
		if err != nil {
			return nil, err
		}

		if resp.StationID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		summaries = append(summaries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
