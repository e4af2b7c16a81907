package commands

import (
	"context"
	"time"
)

// RecallOrderCommandHandler pulls a ready order back into preparation, for
// example after the expo spots a quality problem.
type RecallOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecallOrderCommandHandler creates a handler for recalling orders.
func NewRecallOrderCommandHandler(uowFactory OrderUoWFactory) RecallOrderCommandHandler {
	return RecallOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recall command.
func (h *RecallOrderCommandHandler) Handle(ctx context.Context, cmd RecallOrderCommand) error {
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

	if err = foundOrder.Recall(now); err != nil {
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
