// Package ticketrepo provides data transfer objects and mapping functions for
// ticket persistence. Implements the repository pattern for the ticket
// aggregate, converting between domain entities and database rows.
package ticketrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/ticket"

	"github.com/google/uuid"
)

// TicketDTO represents the database structure for persisting ticket aggregates.
type TicketDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	StationID   uuid.UUID `gorm:"type:uuid;index"`
	ItemIDs     []string  `gorm:"serializer:json"`
	FireSeq     int
	PrintStatus string
	Acked       bool
	AckedAt     *time.Time
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for ticket entities.
func (TicketDTO) TableName() string {
	return "tickets"
}

// fromDomain converts a ticket aggregate to its database representation.
func fromDomain(aggregate *ticket.Ticket) TicketDTO {
	itemIDs := make([]string, 0, len(aggregate.ItemIDs()))
	for _, itemID := range aggregate.ItemIDs() {
		itemIDs = append(itemIDs, itemID.String())
	}

	return TicketDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		StationID:   aggregate.StationID().Bytes(),
		ItemIDs:     itemIDs,
		FireSeq:     aggregate.FireSeq(),
		PrintStatus: aggregate.PrintStatus().String(),
		Acked:       aggregate.IsAcked(),
		AckedAt:     aggregate.AckedAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to a ticket aggregate using the restore
// constructor.
func toDomain(dto TicketDTO) (*ticket.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	stationID, err := kernel.UUIDFromBytes(dto.StationID[:])
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(dto.ItemIDs))
	for _, raw := range dto.ItemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	printStatus, err := ticket.PrintStatusFromString(dto.PrintStatus)
	if err != nil {
		return nil, err
	}

	return ticket.RestoreTicket(
		id,
		orderID,
		stationID,
		itemIDs,
		dto.FireSeq,
		printStatus,
		dto.Acked,
		dto.AckedAt,
		dto.CreatedAt,
	)
}
