package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrDeactivateStationCommandIsNotConstructed = errors.New(
	"DeactivateStationCommand must be created via NewDeactivateStationCommand constructor",
)

// DeactivateStationCommand represents a request to take a station out of
// service. Deactivation is refused while active routing rules target the
// station.
type DeactivateStationCommand struct { //nolint:recvcheck //using for validation
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateStationCommand creates a command to deactivate a station.
func NewDeactivateStationCommand(stationID kernel.UUID) (DeactivateStationCommand, error) {
	stationCommand := DeactivateStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := stationCommand.setStationID(stationID); err != nil {
		return DeactivateStationCommand{}, err
	}

	return stationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateStationCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateStationCommandIsNotConstructed)
}

// StationID returns the identifier of the station to deactivate.
func (c DeactivateStationCommand) StationID() kernel.UUID {
	return c.stationID
}

func (c *DeactivateStationCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	c.stationID = stationID
	return nil
}
