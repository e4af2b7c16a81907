package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/ticket"

	"github.com/labstack/echo/v4"
)

// AckTicket handles POST /api/v1/tickets/:ticketId/ack - a station starts
// working the ticket.
func (s *Server) AckTicket(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("ticketId"))
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}

	cmd, err := commands.NewAckTicketCommand(ticketID)
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}

	if handleErr := s.handlers.AckTicket.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReprintTicket handles POST /api/v1/tickets/:ticketId/reprint.
func (s *Server) ReprintTicket(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("ticketId"))
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}

	cmd, err := commands.NewReprintTicketCommand(ticketID)
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}

	if handleErr := s.handlers.ReprintTicket.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// MarkTicketPrinted handles POST /api/v1/tickets/:ticketId/print-status -
// the print spooler reports the outcome.
func (s *Server) MarkTicketPrinted(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("ticketId"))
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}

	var body PrintOutcome
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	outcome, err := ticket.PrintStatusFromString(body.Outcome)
	if err != nil {
		return badRequest(ctx, "Invalid print outcome: "+body.Outcome)
	}

	cmd, err := commands.NewMarkTicketPrintedCommand(ticketID, outcome)
	if err != nil {
		return badRequest(ctx, "Invalid print outcome: "+err.Error())
	}

	if handleErr := s.handlers.MarkTicketPrinted.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RenderTicket handles GET /api/v1/tickets/:ticketId/render.
func (s *Server) RenderTicket(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("ticketId"))
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}

	query, err := queries.NewRenderTicketQuery(ticketID)
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}

	rendered, err := s.handlers.RenderTicket.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]TicketLine, len(rendered.Lines))
	for i, line := range rendered.Lines {
		lines[i] = TicketLine{
			Quantity:  line.Quantity,
			Name:      line.Name,
			Modifiers: line.Modifiers,
			Notes:     line.Notes,
			Seat:      line.Seat,
		}
	}

	return ctx.JSON(http.StatusOK, RenderedTicket{
		TicketID:    rendered.TicketID.String(),
		StationName: rendered.StationName,
		OrderNumber: rendered.OrderNumber,
		TableRef:    rendered.TableRef,
		Priority:    rendered.Priority,
		FireSeq:     rendered.FireSeq,
		CreatedAt:   rendered.CreatedAt,
		Lines:       lines,
		Text:        rendered.Text,
	})
}
