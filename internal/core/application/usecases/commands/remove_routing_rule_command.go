package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrRemoveRoutingRuleCommandIsNotConstructed = errors.New(
	"RemoveRoutingRuleCommand must be created via NewRemoveRoutingRuleCommand constructor",
)

// RemoveRoutingRuleCommand represents a request to retire a routing rule.
// Retired rules stop matching immediately; orders already fired keep the
// routes they were dispatched with.
type RemoveRoutingRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveRoutingRuleCommand creates a command to retire a routing rule.
func NewRemoveRoutingRuleCommand(ruleID kernel.UUID) (RemoveRoutingRuleCommand, error) {
	ruleCommand := RemoveRoutingRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := ruleCommand.setRuleID(ruleID); err != nil {
		return RemoveRoutingRuleCommand{}, err
	}

	return ruleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveRoutingRuleCommand) Validate() error {
	return c.guard.Validate(ErrRemoveRoutingRuleCommandIsNotConstructed)
}

// RuleID returns the identifier of the rule to retire.
func (c RemoveRoutingRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

func (c *RemoveRoutingRuleCommand) setRuleID(ruleID kernel.UUID) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}

	c.ruleID = ruleID
	return nil
}
