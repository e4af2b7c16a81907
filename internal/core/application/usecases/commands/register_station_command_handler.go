package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/station"
	"orders/internal/pkg/errs"
)

var (
	// ErrDuplicateStation is returned when a station with the same id or
	// name is already registered.
	ErrDuplicateStation = errors.New("station with this id or name is already registered")

	// ErrStationInUse is returned when a station cannot be deactivated
	// because active routing rules still target it.
	ErrStationInUse = errors.New("station is still targeted by active routing rules")
)

// RegisterStationCommandHandler registers a new kitchen station. Station ids
// and names are unique across the registry, inactive stations included.
type RegisterStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewRegisterStationCommandHandler creates a handler for station registration.
func NewRegisterStationCommandHandler(uowFactory StationUoWFactory) RegisterStationCommandHandler {
	return RegisterStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station registration command.
func (h *RegisterStationCommandHandler) Handle(ctx context.Context, cmd RegisterStationCommand) error {
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

	if _, err := stationRepo.Get(ctx, cmd.StationID()); err == nil {
		return ErrDuplicateStation
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if _, err := stationRepo.GetByName(ctx, cmd.Name()); err == nil {
		return ErrDuplicateStation
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newStation, err := station.NewStation(cmd.StationID(), cmd.Name(), cmd.Tags(), cmd.SortOrder())
	if err != nil {
		return err
	}

	if err = stationRepo.Add(ctx, newStation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
