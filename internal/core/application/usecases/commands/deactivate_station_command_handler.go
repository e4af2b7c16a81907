package commands

import (
	"context"
)

// DeactivateStationCommandHandler takes a station out of service. The active
// rule count is checked in the same transaction, so a concurrent rule
// creation cannot slip past the guard.
type DeactivateStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewDeactivateStationCommandHandler creates a handler for station deactivation.
func NewDeactivateStationCommandHandler(uowFactory StationUoWFactory) DeactivateStationCommandHandler {
	return DeactivateStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station deactivation command.
func (h *DeactivateStationCommandHandler) Handle(ctx context.Context, cmd DeactivateStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stationRepo := uow.StationRepository()

	foundStation, err := stationRepo.Get(ctx, cmd.StationID())
	if err != nil {
		return err
	}

	activeRules, err := uow.RuleRepository().CountActiveForStation(ctx, cmd.StationID())
	if err != nil {
		return err
	}
	if activeRules > 0 {
		return ErrStationInUse
	}

	foundStation.Deactivate()

	if err = stationRepo.Update(ctx, foundStation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
