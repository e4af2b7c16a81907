package ticketrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/ticket"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTicketRepository implements TicketRepository using GORM.
type GormTicketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTicketRepository creates a new GORM ticket repository.
func NewGormTicketRepository(db *gorm.DB, tracker aggregateTracker) *GormTicketRepository {
	return &GormTicketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ticket to the database.
func (r *GormTicketRepository) Add(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddAll saves a fire event's ticket batch in a single insert.
func (r *GormTicketRepository) AddAll(ctx context.Context, aggregates []*ticket.Ticket) error {
	if len(aggregates) == 0 {
		return nil
	}

	dtos := make([]TicketDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Update saves an existing ticket to the database.
func (r *GormTicketRepository) Update(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TicketDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("ID", "CreatedAt").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ticket", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ticket by ID.
func (r *GormTicketRepository) Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ticket", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves every ticket of an order, oldest first.
func (r *GormTicketRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*ticket.Ticket, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TicketDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetActiveByStation retrieves tickets of active orders for a station,
// ordered by order priority (VIP first) then creation time.
func (r *GormTicketRepository) GetActiveByStation(ctx context.Context, stationID kernel.UUID) ([]*ticket.Ticket, error) {
	if err := stationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TicketDTO
	err := r.db.WithContext(ctx).Model(&TicketDTO{}).
		Select("tickets.*").
		Joins("JOIN orders ON orders.id = tickets.order_id").
		Where("tickets.station_id = ?", stationID.Bytes()).
		Where("orders.status IN ?", []string{order.Fired.String(), order.InProgress.String()}).
		Order("CASE orders.priority WHEN 'VIP' THEN 0 WHEN 'Rush' THEN 1 ELSE 2 END, tickets.created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []TicketDTO) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, aggregate)
	}
	return tickets, nil
}
