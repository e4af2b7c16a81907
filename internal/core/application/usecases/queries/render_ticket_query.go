package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrRenderTicketQueryIsNotConstructed = errors.New(
	"RenderTicketQuery must be created via NewRenderTicketQuery constructor",
)

// RenderTicketQuery retrieves one ticket in printable form: the station
// header, the order identity and the item lines with quantities, modifiers
// and notes.
type RenderTicketQuery struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRenderTicketQuery creates a query to render a ticket.
func NewRenderTicketQuery(ticketID kernel.UUID) (RenderTicketQuery, error) {
	query := RenderTicketQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTicketID(ticketID); err != nil {
		return RenderTicketQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q RenderTicketQuery) Validate() error {
	return q.guard.Validate(ErrRenderTicketQueryIsNotConstructed)
}

// TicketID returns the identifier of the ticket to render.
func (q RenderTicketQuery) TicketID() kernel.UUID {
	return q.ticketID
}

func (q *RenderTicketQuery) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}

	q.ticketID = ticketID
	return nil
}

// TicketLineResponse represents one printable item line.
type TicketLineResponse struct {
	Quantity  int
	Name      string
	Modifiers []string
	Notes     string
	Seat      *int
}

// RenderTicketQueryResponse represents a ticket ready for printing.
// Text carries the full plain-text rendition for line printers.
type RenderTicketQueryResponse struct {
	TicketID    kernel.UUID
	StationName string
	OrderNumber string
	TableRef    string
	Priority    string
	FireSeq     int
	CreatedAt   time.Time
	Lines       []TicketLineResponse
	Text        string
}
