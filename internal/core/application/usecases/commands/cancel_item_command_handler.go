package commands

import (
	"context"
	"time"

	"orders/internal/core/ports"
)

// CancelItemCommandHandler cancels a single item. Cancelling the last
// outstanding item may flip an in-progress order to ready.
type CancelItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelItemCommandHandler creates a handler for cancelling order items.
func NewCancelItemCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CancelItemCommandHandler {
	return CancelItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the item cancellation command.
func (h *CancelItemCommandHandler) Handle(ctx context.Context, cmd CancelItemCommand) error {
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

	if err = foundOrder.CancelItem(cmd.ItemID(), now); err != nil {
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
