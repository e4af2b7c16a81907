package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/routing"

	"github.com/labstack/echo/v4"
)

// RegisterStation handles POST /api/v1/stations.
func (s *Server) RegisterStation(ctx echo.Context) error {
	var body NewStation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stationID := kernel.NewUUID()
	cmd, err := commands.NewRegisterStationCommand(stationID, body.Name, body.Tags, body.SortOrder)
	if err != nil {
		return badRequest(ctx, "Invalid station data: "+err.Error())
	}

	if handleErr := s.handlers.RegisterStation.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, StationCreated{ID: stationID.String()})
}

// ListStations handles GET /api/v1/stations?active=true.
func (s *Server) ListStations(ctx echo.Context) error {
	activeOnly := ctx.QueryParam("active") == "true"

	stations, err := s.handlers.ListStations.Handle(ctx.Request().Context(), queries.NewListStationsQuery(activeOnly))
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Station, len(stations))
	for i, row := range stations {
		response[i] = Station{
			ID:        row.ID.String(),
			Name:      row.Name,
			Tags:      row.Tags,
			Active:    row.Active,
			SortOrder: row.SortOrder,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeactivateStation handles POST /api/v1/stations/:stationId/deactivate.
func (s *Server) DeactivateStation(ctx echo.Context) error {
	stationID, err := kernel.UUIDFromString(ctx.Param("stationId"))
	if err != nil {
		return badRequest(ctx, "Invalid station id")
	}

	cmd, err := commands.NewDeactivateStationCommand(stationID)
	if err != nil {
		return badRequest(ctx, "Invalid station id")
	}

	if handleErr := s.handlers.DeactivateStation.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStationSummary handles GET /api/v1/stations/summary - the expo overview.
func (s *Server) GetStationSummary(ctx echo.Context) error {
	summary, err := s.handlers.GetStationSummary.Handle(ctx.Request().Context(), queries.NewGetStationSummaryQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StationSummary, len(summary))
	for i, row := range summary {
		response[i] = StationSummary{
			StationID:      row.StationID.String(),
			Name:           row.Name,
			PendingTickets: row.PendingTickets,
			WorkingTickets: row.WorkingTickets,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStationTickets handles GET /api/v1/stations/:stationId/tickets.
func (s *Server) GetStationTickets(ctx echo.Context) error {
	stationID, err := kernel.UUIDFromString(ctx.Param("stationId"))
	if err != nil {
		return badRequest(ctx, "Invalid station id")
	}

	query, err := queries.NewGetStationTicketsQuery(stationID)
	if err != nil {
		return badRequest(ctx, "Invalid station id")
	}

	tickets, err := s.handlers.GetStationTickets.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StationTicket, len(tickets))
	for i, row := range tickets {
		response[i] = StationTicket{
			TicketID:    row.TicketID.String(),
			OrderID:     row.OrderID.String(),
			OrderNumber: row.OrderNumber,
			TableRef:    row.TableRef,
			Priority:    row.Priority,
			FireSeq:     row.FireSeq,
			PrintStatus: row.PrintStatus,
			Acked:       row.Acked,
			CreatedAt:   row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRoutingRule handles POST /api/v1/routing-rules.
func (s *Server) CreateRoutingRule(ctx echo.Context) error {
	var body NewRoutingRule
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := routing.MatchKindFromString(body.MatchKind)
	if err != nil {
		return badRequest(ctx, "Invalid match kind: "+body.MatchKind)
	}

	stationID, err := kernel.UUIDFromString(body.StationID)
	if err != nil {
		return badRequest(ctx, "Invalid station id")
	}

	ruleID := kernel.NewUUID()
	cmd, err := commands.NewCreateRoutingRuleCommand(ruleID, body.Priority, kind, body.MatchValue, stationID)
	if err != nil {
		return badRequest(ctx, "Invalid rule data: "+err.Error())
	}

	if handleErr := s.handlers.CreateRoutingRule.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, RuleCreated{ID: ruleID.String()})
}

// RemoveRoutingRule handles DELETE /api/v1/routing-rules/:ruleId.
func (s *Server) RemoveRoutingRule(ctx echo.Context) error {
	ruleID, err := kernel.UUIDFromString(ctx.Param("ruleId"))
	if err != nil {
		return badRequest(ctx, "Invalid rule id")
	}

	cmd, err := commands.NewRemoveRoutingRuleCommand(ruleID)
	if err != nil {
		return badRequest(ctx, "Invalid rule id")
	}

	if handleErr := s.handlers.RemoveRoutingRule.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
