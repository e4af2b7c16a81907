// Package http exposes the order and kitchen operations as a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AddOrderItem       commands.AddOrderItemCommandHandler
	RemoveOrderItem    commands.RemoveOrderItemCommandHandler
	UpdateItemQuantity commands.UpdateItemQuantityCommandHandler
	UpdateItemStatus   commands.UpdateItemStatusCommandHandler
	CancelItem         commands.CancelItemCommandHandler
	FireOrder          commands.FireOrderCommandHandler
	BumpOrder          commands.BumpOrderCommandHandler
	RecallOrder        commands.RecallOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	AckTicket          commands.AckTicketCommandHandler
	ReprintTicket      commands.ReprintTicketCommandHandler
	MarkTicketPrinted  commands.MarkTicketPrintedCommandHandler
	RegisterStation    commands.RegisterStationCommandHandler
	DeactivateStation  commands.DeactivateStationCommandHandler
	CreateRoutingRule  commands.CreateRoutingRuleCommandHandler
	RemoveRoutingRule  commands.RemoveRoutingRuleCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetActiveOrders   queries.GetActiveOrdersQueryHandler
	GetOrdersByTable  queries.GetOrdersByTableQueryHandler
	GetOrderStats     queries.GetOrderStatsQueryHandler
	ListStations      queries.ListStationsQueryHandler
	GetStationSummary queries.GetStationSummaryQueryHandler
	GetStationTickets queries.GetStationTicketsQueryHandler
	RenderTicket      queries.RenderTicketQueryHandler
}

// Server handles HTTP requests for the order service.
type Server struct {
	handlers       Handlers
	requestTimeout time.Duration
}

// NewServer creates a new HTTP server with the required handlers. Requests
// under /api/v1 are bounded by requestTimeout; zero disables the deadline.
func NewServer(handlers Handlers, requestTimeout time.Duration) *Server {
	return &Server{handlers: handlers, requestTimeout: requestTimeout}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.withRequestTimeout)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/stats", s.GetOrderStats)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/fire", s.FireOrder)
	api.POST("/orders/:orderId/bump", s.BumpOrder)
	api.POST("/orders/:orderId/recall", s.RecallOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/items", s.AddOrderItem)
	api.DELETE("/orders/:orderId/items/:itemId", s.RemoveOrderItem)
	api.PATCH("/orders/:orderId/items/:itemId/quantity", s.UpdateItemQuantity)
	api.POST("/orders/:orderId/items/:itemId/status", s.UpdateItemStatus)
	api.POST("/orders/:orderId/items/:itemId/cancel", s.CancelItem)

	api.GET("/tables/:tableRef/orders", s.GetOrdersByTable)

	api.POST("/stations", s.RegisterStation)
	api.GET("/stations", s.ListStations)
	api.GET("/stations/summary", s.GetStationSummary)
	api.POST("/stations/:stationId/deactivate", s.DeactivateStation)
	api.GET("/stations/:stationId/tickets", s.GetStationTickets)

	api.POST("/routing-rules", s.CreateRoutingRule)
	api.DELETE("/routing-rules/:ruleId", s.RemoveRoutingRule)

	api.POST("/tickets/:ticketId/ack", s.AckTicket)
	api.POST("/tickets/:ticketId/reprint", s.ReprintTicket)
	api.POST("/tickets/:ticketId/print-status", s.MarkTicketPrinted)
	api.GET("/tickets/:ticketId/render", s.RenderTicket)
}

// withRequestTimeout caps how long a request may hold database connections.
func (s *Server) withRequestTimeout(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if s.requestTimeout <= 0 {
			return next(ctx)
		}

		reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), s.requestTimeout)
		defer cancel()

		ctx.SetRequest(ctx.Request().WithContext(reqCtx))
		return next(ctx)
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// badRequest replies with 400 and the validation message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain and infrastructure errors to HTTP statuses.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, commands.ErrDuplicateStation),
		errors.Is(err, commands.ErrStationInUse),
		errors.Is(err, commands.ErrStationNotActive):
		status = http.StatusConflict
	case errors.Is(err, services.ErrUnroutableItem):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
