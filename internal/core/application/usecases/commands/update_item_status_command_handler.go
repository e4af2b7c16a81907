package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// UpdateItemStatusCommandHandler advances one item through its preparation
// lifecycle on behalf of a station cook. Reaching ready may also flip the
// whole order to ready when every other item is done.
type UpdateItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateItemStatusCommandHandler creates a handler for item status changes.
func NewUpdateItemStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the item status command.
func (h *UpdateItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateItemStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	foundOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case order.ItemPreparing:
		err = foundOrder.StartItem(cmd.ItemID(), now)
	case order.ItemReady:
		err = foundOrder.MarkItemReady(cmd.ItemID(), now)
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, foundOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	item, err := foundOrder.Item(cmd.ItemID())
	if err == nil {
		publishItemStatusChanged(ctx, h.publisher, foundOrder, item, now)
	}

	return nil
}
