package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrRegisterStationCommandIsNotConstructed = errors.New(
	"RegisterStationCommand must be created via NewRegisterStationCommand constructor",
)

// RegisterStationCommand represents a request to register a kitchen station.
type RegisterStationCommand struct { //nolint:recvcheck //using for validation
	stationID kernel.UUID
	name      string
	tags      []string
	sortOrder int

	guard guard.ConstructorGuard
}

// NewRegisterStationCommand creates a command to register a station.
func NewRegisterStationCommand(
	stationID kernel.UUID,
	name string,
	tags []string,
	sortOrder int,
) (RegisterStationCommand, error) {
	stationCommand := RegisterStationCommand{
		tags:      append([]string(nil), tags...),
		sortOrder: sortOrder,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stationCommand.setStationID(stationID),
		stationCommand.setName(name),
	); err != nil {
		return RegisterStationCommand{}, err
	}

	return stationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterStationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStationCommandIsNotConstructed)
}

// StationID returns the identifier of the new station.
func (c RegisterStationCommand) StationID() kernel.UUID {
	return c.stationID
}

// Name returns the display name of the new station.
func (c RegisterStationCommand) Name() string {
	return c.name
}

// Tags returns the tags the station is able to handle.
func (c RegisterStationCommand) Tags() []string {
	tags := make([]string, len(c.tags))
	copy(tags, c.tags)
	return tags
}

// SortOrder returns the display position of the station.
func (c RegisterStationCommand) SortOrder() int {
	return c.sortOrder
}

func (c *RegisterStationCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	c.stationID = stationID
	return nil
}

func (c *RegisterStationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
