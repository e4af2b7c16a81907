package queries

import (
	"context"
	"database/sql"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByTableQueryHandler retrieves a table's order history from the
// database. Reuses the active order read model; cancelled and bumped orders
// are included.
type GetOrdersByTableQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByTableQueryHandler creates a handler for table lookups.
func NewGetOrdersByTableQueryHandler(db *gorm.DB) GetOrdersByTableQueryHandler {
	return GetOrdersByTableQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first.
func (h GetOrdersByTableQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByTableQuery,
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
			COUNT(i.id) AS item_count,
			COUNT(i.id) FILTER (WHERE i.status = 'Ready') AS ready_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.table_ref = ?
		GROUP BY o.id
		ORDER BY o.created_at DESC
	`, query.TableRef()).Rows()
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
