package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when the order does
// not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			table_ref,
			order_type,
			priority,
			notes,
			status,
			created_at,
			fired_at,
			ready_at,
			bumped_at,
			cancelled_at,
			cancel_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id uuid.UUID
	var firedAt, readyAt, bumpedAt, cancelledAt sql.NullTime

	err := row.Scan(
		&id,
		&resp.Number,
		&resp.TableRef,
		&resp.OrderType,
		&resp.Priority,
		&resp.Notes,
		&resp.Status,
		&resp.CreatedAt,
		&firedAt,
		&readyAt,
		&bumpedAt,
		&cancelledAt,
		&resp.CancelReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.FiredAt = timePtr(firedAt)
	resp.ReadyAt = timePtr(readyAt)
	resp.BumpedAt = timePtr(bumpedAt)
	resp.CancelledAt = timePtr(cancelledAt)

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			name,
			category,
			quantity,
			modifiers,
			notes,
			seat,
			status,
			station_ids,
			fired_at,
			started_at,
			completed_at
		FROM order_items
		WHERE order_id = ?
		ORDER BY sort_index
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)

	for rows.Next() {
		var item OrderItemResponse
		var id, productID uuid.UUID
		var modifiers, stationIDs []byte
		var seat sql.NullInt64
		var firedAt, startedAt, completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&productID,
			&item.Name,
			&item.Category,
			&item.Quantity,
			&modifiers,
			&item.Notes,
			&seat,
			&item.Status,
			&stationIDs,
			&firedAt,
			&startedAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.Modifiers, err = parseStringList(modifiers); err != nil {
			return nil, err
		}
		if item.StationIDs, err = parseUUIDList(stationIDs); err != nil {
			return nil, err
		}
		item.Seat = intPtr(seat)
		item.FiredAt = timePtr(firedAt)
		item.StartedAt = timePtr(startedAt)
		item.CompletedAt = timePtr(completedAt)

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
