package queries

import (
	"context"
	"database/sql"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes daily throughput stats from the
// database. Preparation time is measured from firing to the order going
// ready; orders never fired or never ready do not contribute to the average.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for throughput stats.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query. Days without orders are absent from the result.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) ([]DailyOrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]DailyOrderStatsResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			DATE_TRUNC('day', created_at) AS day,
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = ?) AS bumped_orders,
			COUNT(*) FILTER (WHERE status = ?) AS cancelled_orders,
			AVG(EXTRACT(EPOCH FROM (ready_at - fired_at)) / 60.0)
				FILTER (WHERE ready_at IS NOT NULL AND fired_at IS NOT NULL) AS avg_prep_minutes
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		GROUP BY day
		ORDER BY day
	`,
		order.Bumped.String(),
		order.Cancelled.String(),
		query.From(),
		query.To(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp DailyOrderStatsResponse
		var avgPrep sql.NullFloat64

		err = rows.Scan(
			&resp.Day,
			&resp.TotalOrders,
			&resp.BumpedOrders,
			&resp.CancelledOrders,
			&avgPrep,
		)
		if err != nil {
			return nil, err
		}

		if avgPrep.Valid {
			resp.AvgPrepMinutes = avgPrep.Float64
		}

		stats = append(stats, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
