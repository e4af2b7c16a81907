package commands

import (
	"context"
	"time"
)

// BumpOrderCommandHandler clears a ready order from the expo board, marking
// its ready items as served.
type BumpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBumpOrderCommandHandler creates a handler for bumping orders.
func NewBumpOrderCommandHandler(uowFactory OrderUoWFactory) BumpOrderCommandHandler {
	return BumpOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bump command.
func (h *BumpOrderCommandHandler) Handle(ctx context.Context, cmd BumpOrderCommand) error {
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

	if err = foundOrder.Bump(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, foundOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
