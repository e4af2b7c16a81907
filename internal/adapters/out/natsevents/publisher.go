// Package natsevents publishes domain events to NATS subjects consumed by
// kitchen display systems.
package natsevents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"orders/internal/core/ports"

	"github.com/nats-io/nats.go"
)

const (
	ticketSubject = "orders.tickets"
	itemSubject   = "orders.items"
)

// Publisher implements EventPublisher on top of a NATS connection.
// Publishing is fire-and-forget: failures are logged and surfaced to the
// caller, which decides whether they matter.
type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// NewPublisher connects to the NATS server at the given URL.
func NewPublisher(url string, logger *slog.Logger) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:   conn,
		logger: logger.With("component", "nats_publisher"),
	}, nil
}

// PublishTicketCreated announces a dispatched or reprinted ticket.
func (p *Publisher) PublishTicketCreated(ctx context.Context, event ports.TicketCreatedEvent) error {
	return p.publish(ctx, ticketSubject, event)
}

// PublishItemStatusChanged announces an item status change.
func (p *Publisher) PublishItemStatusChanged(ctx context.Context, event ports.ItemStatusChangedEvent) error {
	return p.publish(ctx, itemSubject, event)
}

func (p *Publisher) publish(ctx context.Context, subject string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal event", "subject", subject, "error", err)
		return err
	}

	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish event", "subject", subject, "error", err)
		return err
	}

	return nil
}

// Close drains the underlying NATS connection.
func (p *Publisher) Close() {
	p.conn.Close()
}
