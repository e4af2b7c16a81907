package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RenderTicketQueryHandler builds the printable form of a ticket from the
// database. The ticket's item snapshot drives the lines; later item changes
// on the order do not alter an already rendered ticket.
type RenderTicketQueryHandler struct {
	db *gorm.DB
}

// NewRenderTicketQueryHandler creates a handler for ticket rendering.
func NewRenderTicketQueryHandler(db *gorm.DB) RenderTicketQueryHandler {
	return RenderTicketQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when the ticket does
// not exist.
func (h RenderTicketQueryHandler) Handle(
	ctx context.Context,
	query RenderTicketQuery,
) (RenderTicketQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RenderTicketQueryResponse{}, err
	}

	var resp RenderTicketQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.item_ids,
			t.fire_seq,
			t.created_at,
			o.number,
			o.table_ref,
			o.priority,
			s.name
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		JOIN stations s ON s.id = t.station_id
		WHERE t.id = ?
	`, query.TicketID().Bytes()).Row()

	var id uuid.UUID
	var itemIDsRaw []byte

	err := row.Scan(
		&id,
		&itemIDsRaw,
		&resp.FireSeq,
		&resp.CreatedAt,
		&resp.OrderNumber,
		&resp.TableRef,
		&resp.Priority,
		&resp.StationName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RenderTicketQueryResponse{}, errs.NewObjectNotFoundError("ticketID", query.TicketID())
		}
		return RenderTicketQueryResponse{}, err
	}

	if resp.TicketID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return RenderTicketQueryResponse{}, err
	}

	itemIDs, err := parseUUIDList(itemIDsRaw)
	if err != nil {
		return RenderTicketQueryResponse{}, err
	}

	if resp.Lines, err = h.loadLines(ctx, itemIDs); err != nil {
		return RenderTicketQueryResponse{}, err
	}
	resp.Text = renderTicketText(resp)

	return resp, nil
}

func (h RenderTicketQueryHandler) loadLines(
	ctx context.Context,
	itemIDs []kernel.UUID,
) ([]TicketLineResponse, error) {
	ids := make([]uuid.UUID, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		ids = append(ids, itemID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT quantity, name, modifiers, notes, seat
		FROM order_items
		WHERE id IN ?
		ORDER BY sort_index
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]TicketLineResponse, 0, len(itemIDs))

	for rows.Next() {
		var line TicketLineResponse
		var modifiers []byte
		var seat sql.NullInt64

		err = rows.Scan(&line.Quantity, &line.Name, &modifiers, &line.Notes, &seat)
		if err != nil {
			return nil, err
		}

		if line.Modifiers, err = parseStringList(modifiers); err != nil {
			return nil, err
		}
		line.Seat = intPtr(seat)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// renderTicketText formats a ticket for 32-column line printers.
func renderTicketText(resp RenderTicketQueryResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "== %s ==\n", strings.ToUpper(resp.StationName))
	fmt.Fprintf(&b, "%s  %s", resp.OrderNumber, resp.TableRef)
	if resp.Priority != "Normal" {
		fmt.Fprintf(&b, "  %s", strings.ToUpper(resp.Priority))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Fire #%d  %s\n", resp.FireSeq, resp.CreatedAt.Format("15:04"))
	b.WriteString(strings.Repeat("-", 32) + "\n")

	for _, line := range resp.Lines {
		fmt.Fprintf(&b, "%2dx %s", line.Quantity, line.Name)
		if line.Seat != nil {
			fmt.Fprintf(&b, " (seat %d)", *line.Seat)
		}
		b.WriteString("\n")
		for _, modifier := range line.Modifiers {
			fmt.Fprintf(&b, "    + %s\n", modifier)
		}
		if line.Notes != "" {
			fmt.Fprintf(&b, "    * %s\n", line.Notes)
		}
	}

	return b.String()
}
