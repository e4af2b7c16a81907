package commands

import (
	"context"
)

// RemoveRoutingRuleCommandHandler retires a routing rule. Rules are
// deactivated rather than deleted so fired tickets keep a valid history.
type RemoveRoutingRuleCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewRemoveRoutingRuleCommandHandler creates a handler for rule removal.
func NewRemoveRoutingRuleCommandHandler(uowFactory StationUoWFactory) RemoveRoutingRuleCommandHandler {
	return RemoveRoutingRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rule removal command.
func (h *RemoveRoutingRuleCommandHandler) Handle(ctx context.Context, cmd RemoveRoutingRuleCommand) error {
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

	ruleRepo := uow.RuleRepository()

	foundRule, err := ruleRepo.Get(ctx, cmd.RuleID())
	if err != nil {
		return err
	}

	foundRule.Deactivate()

	if err = ruleRepo.Update(ctx, foundRule); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
