package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationTicketsQueryHandler retrieves one station's ticket queue from
// the database.
type GetStationTicketsQueryHandler struct {
	db *gorm.DB
}

// NewGetStationTicketsQueryHandler creates a handler for station queues.
func NewGetStationTicketsQueryHandler(db *gorm.DB) GetStationTicketsQueryHandler {
	return GetStationTicketsQueryHandler{db: db}
}

// Handle executes the query. VIP orders jump the queue, then rush, then the
// rest in firing order.
func (h GetStationTicketsQueryHandler) Handle(
	ctx context.Context,
	query GetStationTicketsQuery,
) ([]StationTicketResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tickets := make([]StationTicketResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.order_id,
			o.number,
			o.table_ref,
			o.priority,
			t.fire_seq,
			t.print_status,
			t.acked,
			t.created_at
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		WHERE t.station_id = ?
			AND o.status IN (?, ?)
		ORDER BY
			CASE o.priority WHEN 'VIP' THEN 0 WHEN 'Rush' THEN 1 ELSE 2 END,
			t.created_at
	`,
		query.StationID().Bytes(),
		order.Fired.String(),
		order.InProgress.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StationTicketResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.OrderNumber,
			&resp.TableRef,
			&resp.Priority,
			&resp.FireSeq,
			&resp.PrintStatus,
			&resp.Acked,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.TicketID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		tickets = append(tickets, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
