package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/routing"
)

// ErrStationNotActive is returned when a routing rule targets a station that
// is not in service.
var ErrStationNotActive = errors.New("rule target station is not active")

// CreateRoutingRuleCommandHandler adds a routing rule. The target station
// must exist and be active at the time the rule is created.
type CreateRoutingRuleCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewCreateRoutingRuleCommandHandler creates a handler for rule creation.
func NewCreateRoutingRuleCommandHandler(uowFactory StationUoWFactory) CreateRoutingRuleCommandHandler {
	return CreateRoutingRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rule creation command.
func (h *CreateRoutingRuleCommandHandler) Handle(ctx context.Context, cmd CreateRoutingRuleCommand) error {
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

	targetStation, err := uow.StationRepository().Get(ctx, cmd.StationID())
	if err != nil {
		return err
	}
	if !targetStation.IsActive() {
		return ErrStationNotActive
	}

	newRule, err := routing.NewRule(cmd.RuleID(), cmd.Priority(), cmd.Matcher(), cmd.StationID())
	if err != nil {
		return err
	}

	if err = uow.RuleRepository().Add(ctx, newRule); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
