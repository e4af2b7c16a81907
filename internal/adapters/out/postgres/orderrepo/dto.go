// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column guards concurrent writers: updates only apply against
// the version they loaded.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"uniqueIndex"`
	TableRef     string    `gorm:"index"`
	OrderType    string
	Priority     string
	Notes        string
	Status       string `gorm:"index"`
	FireSeq      int
	Version      int64
	CreatedAt    time.Time `gorm:"index"`
	FiredAt      *time.Time
	ReadyAt      *time.Time
	BumpedAt     *time.Time
	CancelledAt  *time.Time
	CancelReason string
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. SortIndex preserves the entry order of
// the items on the check.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	SortIndex   int
	ProductID   uuid.UUID `gorm:"type:uuid"`
	Name        string
	Category    string
	Tags        []string `gorm:"serializer:json"`
	Quantity    int
	Modifiers   []string `gorm:"serializer:json"`
	Notes       string
	Seat        *int
	Status      string
	StationIDs  []string `gorm:"serializer:json"`
	FiredAt     *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// DailySequenceDTO backs the per-day order number counter.
type DailySequenceDTO struct {
	Day     string `gorm:"primaryKey;size:8"`
	LastSeq int
}

// TableName specifies the database table name for the daily counters.
func (DailySequenceDTO) TableName() string {
	return "order_sequences"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(aggregate.ID(), i, item))
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		TableRef:     aggregate.TableRef(),
		OrderType:    aggregate.OrderType().String(),
		Priority:     aggregate.Priority().String(),
		Notes:        aggregate.Notes(),
		Status:       aggregate.Status().String(),
		FireSeq:      aggregate.FireSequence(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		FiredAt:      aggregate.FiredAt(),
		ReadyAt:      aggregate.ReadyAt(),
		BumpedAt:     aggregate.BumpedAt(),
		CancelledAt:  aggregate.CancelledAt(),
		CancelReason: aggregate.CancelReason(),
		Items:        itemDTOs,
	}
}

func itemFromDomain(orderID kernel.UUID, sortIndex int, item *order.Item) ItemDTO {
	stationIDs := make([]string, 0, len(item.StationIDs()))
	for _, stationID := range item.StationIDs() {
		stationIDs = append(stationIDs, stationID.String())
	}

	return ItemDTO{
		ID:          item.ID().Bytes(),
		OrderID:     orderID.Bytes(),
		SortIndex:   sortIndex,
		ProductID:   item.ProductID().Bytes(),
		Name:        item.Name(),
		Category:    item.Category(),
		Tags:        item.Tags(),
		Quantity:    item.Quantity(),
		Modifiers:   item.Modifiers(),
		Notes:       item.Notes(),
		Seat:        item.Seat(),
		Status:      item.Status().String(),
		StationIDs:  stationIDs,
		FiredAt:     item.FiredAt(),
		StartedAt:   item.StartedAt(),
		CompletedAt: item.CompletedAt(),
	}
}

// toDomain converts a database row set to an order aggregate using the
// restore constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		dto.TableRef,
		orderType,
		priority,
		dto.Notes,
		items,
		status,
		dto.FireSeq,
		dto.Version,
		dto.CreatedAt,
		dto.FiredAt,
		dto.ReadyAt,
		dto.BumpedAt,
		dto.CancelledAt,
		dto.CancelReason,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ItemStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	stationIDs := make([]kernel.UUID, 0, len(dto.StationIDs))
	for _, raw := range dto.StationIDs {
		stationID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		stationIDs = append(stationIDs, stationID)
	}

	return order.RestoreItem(
		id,
		productID,
		dto.Name,
		dto.Category,
		dto.Tags,
		dto.Quantity,
		dto.Modifiers,
		dto.Notes,
		dto.Seat,
		status,
		stationIDs,
		dto.FiredAt,
		dto.StartedAt,
		dto.CompletedAt,
	)
}
