package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/routing"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateRoutingRuleCommandIsNotConstructed = errors.New(
	"CreateRoutingRuleCommand must be created via NewCreateRoutingRuleCommand constructor",
)

// CreateRoutingRuleCommand represents a request to add a routing rule. The
// match value is interpreted according to the match kind: a product id for
// item rules, a category name for category rules, a tag for tag rules.
type CreateRoutingRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID    kernel.UUID
	priority  int
	matcher   routing.Matcher
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRoutingRuleCommand creates a command to add a routing rule.
func NewCreateRoutingRuleCommand(
	ruleID kernel.UUID,
	priority int,
	kind routing.MatchKind,
	value string,
	stationID kernel.UUID,
) (CreateRoutingRuleCommand, error) {
	ruleCommand := CreateRoutingRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ruleCommand.setRuleID(ruleID),
		ruleCommand.setPriority(priority),
		ruleCommand.setMatcher(kind, value),
		ruleCommand.setStationID(stationID),
	); err != nil {
		return CreateRoutingRuleCommand{}, err
	}

	return ruleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRoutingRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreateRoutingRuleCommandIsNotConstructed)
}

// RuleID returns the identifier of the new rule.
func (c CreateRoutingRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

// Priority returns the precedence of the new rule, lower wins.
func (c CreateRoutingRuleCommand) Priority() int {
	return c.priority
}

// Matcher returns the predicate built from the match kind and value.
func (c CreateRoutingRuleCommand) Matcher() routing.Matcher {
	return c.matcher
}

// StationID returns the identifier of the target station.
func (c CreateRoutingRuleCommand) StationID() kernel.UUID {
	return c.stationID
}

func (c *CreateRoutingRuleCommand) setRuleID(ruleID kernel.UUID) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}

	c.ruleID = ruleID
	return nil
}

func (c *CreateRoutingRuleCommand) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidError("priority")
	}

	c.priority = priority
	return nil
}

func (c *CreateRoutingRuleCommand) setMatcher(kind routing.MatchKind, value string) error {
	matcher, err := routing.NewMatcher(kind, value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("matcher", err)
	}

	c.matcher = matcher
	return nil
}

func (c *CreateRoutingRuleCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	c.stationID = stationID
	return nil
}
