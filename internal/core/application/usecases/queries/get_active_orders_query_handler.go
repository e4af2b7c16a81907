package queries

import (
	"context"
	"database/sql"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves the kitchen board from the database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the active order board.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first so the board
// reads in cooking sequence.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]ActiveOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ActiveOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.table_ref,
			o.order_type,
			o.priority,
			o.status,
			o.created_at,
			o.fired_at,
			COUNT(i.id) FILTER (WHERE i.status <> ?) AS item_count,
			COUNT(i.id) FILTER (WHERE i.status = ?) AS ready_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status IN (?, ?, ?)
		GROUP BY o.id
		ORDER BY o.created_at
	`,
		order.ItemCancelled.String(),
		order.ItemReady.String(),
		order.Open.String(),
		order.Fired.String(),
		order.InProgress.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ActiveOrderResponse
		var id uuid.UUID
		var firedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.TableRef,
			&resp.OrderType,
			&resp.Priority,
			&resp.Status,
			&resp.CreatedAt,
			&firedAt,
			&resp.ItemCount,
			&resp.ReadyCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.FiredAt = timePtr(firedAt)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
