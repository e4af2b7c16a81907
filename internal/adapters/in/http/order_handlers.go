package http

import (
	"net/http"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType, err := order.TypeFromString(body.OrderType)
	if err != nil {
		return badRequest(ctx, "Invalid order type: "+body.OrderType)
	}

	priority := order.Normal
	if body.Priority != "" {
		priority, err = order.PriorityFromString(body.Priority)
		if err != nil {
			return badRequest(ctx, "Invalid priority: "+body.Priority)
		}
	}

	items := make([]commands.ItemSpec, 0, len(body.Items))
	for _, item := range body.Items {
		spec, specErr := toItemSpec(item)
		if specErr != nil {
			return badRequest(ctx, "Invalid item: "+specErr.Error())
		}
		items = append(items, spec)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.TableRef, orderType, priority, body.Notes, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// GetActiveOrders handles GET /api/v1/orders/active - the kitchen board.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	active, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toActiveOrders(active))
}

// GetOrdersByTable handles GET /api/v1/tables/:tableRef/orders.
func (s *Server) GetOrdersByTable(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByTableQuery(ctx.Param("tableRef"))
	if err != nil {
		return badRequest(ctx, "Invalid table reference")
	}

	orders, err := s.handlers.GetOrdersByTable.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toActiveOrders(orders))
}

// GetOrderStats handles GET /api/v1/orders/stats?from=...&to=... with
// RFC 3339 bounds forming a half-open range.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from parameter, expected RFC 3339 timestamp")
	}
	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to parameter, expected RFC 3339 timestamp")
	}

	query, err := queries.NewGetOrderStatsQuery(from, to)
	if err != nil {
		return badRequest(ctx, "Invalid stats range: "+err.Error())
	}

	stats, err := s.handlers.GetOrderStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DailyOrderStats, len(stats))
	for i, day := range stats {
		response[i] = DailyOrderStats{
			Day:             day.Day,
			TotalOrders:     day.TotalOrders,
			BumpedOrders:    day.BumpedOrders,
			CancelledOrders: day.CancelledOrders,
			AvgPrepMinutes:  day.AvgPrepMinutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// FireOrder handles POST /api/v1/orders/:orderId/fire.
func (s *Server) FireOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewFireOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.handlers.FireOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BumpOrder handles POST /api/v1/orders/:orderId/bump.
func (s *Server) BumpOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewBumpOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.handlers.BumpOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecallOrder handles POST /api/v1/orders/:orderId/recall.
func (s *Server) RecallOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRecallOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.handlers.RecallOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body CancelOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spec, err := toItemSpec(body)
	if err != nil {
		return badRequest(ctx, "Invalid item: "+err.Error())
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, spec)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.handlers.AddOrderItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderId/items/:itemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, itemID, err := orderItemIDs(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order or item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid order or item id")
	}

	if handleErr := s.handlers.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateItemQuantity handles PATCH /api/v1/orders/:orderId/items/:itemId/quantity.
func (s *Server) UpdateItemQuantity(ctx echo.Context) error {
	orderID, itemID, err := orderItemIDs(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order or item id")
	}

	var body ChangeQuantity
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemQuantityCommand(orderID, itemID, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	if handleErr := s.handlers.UpdateItemQuantity.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateItemStatus handles POST /api/v1/orders/:orderId/items/:itemId/status.
func (s *Server) UpdateItemStatus(ctx echo.Context) error {
	orderID, itemID, err := orderItemIDs(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order or item id")
	}

	var body ChangeItemStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ItemStatusFromString(body.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+body.Target)
	}

	cmd, err := commands.NewUpdateItemStatusCommand(orderID, itemID, target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	if handleErr := s.handlers.UpdateItemStatus.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelItem handles POST /api/v1/orders/:orderId/items/:itemId/cancel.
func (s *Server) CancelItem(ctx echo.Context) error {
	orderID, itemID, err := orderItemIDs(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order or item id")
	}

	cmd, err := commands.NewCancelItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid order or item id")
	}

	if handleErr := s.handlers.CancelItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderItemIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orderID, itemID, nil
}

func toItemSpec(body NewItem) (commands.ItemSpec, error) {
	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return commands.ItemSpec{}, err
	}

	return commands.ItemSpec{
		ProductID: productID,
		Name:      body.Name,
		Category:  body.Category,
		Tags:      body.Tags,
		Quantity:  body.Quantity,
		Modifiers: body.Modifiers,
		Notes:     body.Notes,
		Seat:      body.Seat,
	}, nil
}

func toOrder(found queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(found.Items))
	for i, item := range found.Items {
		stationIDs := make([]string, len(item.StationIDs))
		for j, stationID := range item.StationIDs {
			stationIDs[j] = stationID.String()
		}
		items[i] = OrderItem{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			Name:        item.Name,
			Category:    item.Category,
			Quantity:    item.Quantity,
			Modifiers:   item.Modifiers,
			Notes:       item.Notes,
			Seat:        item.Seat,
			Status:      item.Status,
			StationIDs:  stationIDs,
			FiredAt:     item.FiredAt,
			StartedAt:   item.StartedAt,
			CompletedAt: item.CompletedAt,
		}
	}

	return Order{
		ID:           found.ID.String(),
		Number:       found.Number,
		TableRef:     found.TableRef,
		OrderType:    found.OrderType,
		Priority:     found.Priority,
		Notes:        found.Notes,
		Status:       found.Status,
		CreatedAt:    found.CreatedAt,
		FiredAt:      found.FiredAt,
		ReadyAt:      found.ReadyAt,
		BumpedAt:     found.BumpedAt,
		CancelledAt:  found.CancelledAt,
		CancelReason: found.CancelReason,
		Items:        items,
	}
}

func toActiveOrders(rows []queries.ActiveOrderResponse) []ActiveOrder {
	response := make([]ActiveOrder, len(rows))
	for i, row := range rows {
		response[i] = ActiveOrder{
			ID:         row.ID.String(),
			Number:     row.Number,
			TableRef:   row.TableRef,
			OrderType:  row.OrderType,
			Priority:   row.Priority,
			Status:     row.Status,
			ItemCount:  row.ItemCount,
			ReadyCount: row.ReadyCount,
			CreatedAt:  row.CreatedAt,
			FiredAt:    row.FiredAt,
		}
	}
	return response
}
