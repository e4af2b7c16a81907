package routing

import (
	"errors"
	"math"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrRuleIsNotConstructed is returned when a Rule instance was not created
	// through the NewRule or RestoreRule factory methods.
	ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")

	// ErrMatcherIsRequired is returned when a rule is created without a predicate.
	ErrMatcherIsRequired = errors.New("rule matcher is required")
)

// Rule binds a match predicate to a target station. The rule set is evaluated
// by services.RoutingEngine when an order is fired.
//
// Rule follows these invariants:
//   - Must have a valid unique identifier and target station id
//   - Must carry exactly one Matcher
//   - Priority orders evaluation, lower values first; seq breaks ties by
//     insertion order
type Rule struct {
	id kernel.UUID

	// priority orders rule evaluation, lower wins. Product rules are
	// conventionally created with a lower priority than category rules so a
	// product mapping overrides its category mapping.
	priority int

	// seq is the insertion sequence used to break priority ties deterministically
	seq int64

	matcher Matcher

	stationID kernel.UUID

	active bool

	isConstructed bool
}

// NewRule creates a new active routing rule with validation.
func NewRule(id kernel.UUID, priority int, matcher Matcher, stationID kernel.UUID) (*Rule, error) {
	rule := &Rule{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		rule.setID(id),
		rule.setMatcher(matcher),
		rule.setStationID(stationID),
		rule.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return rule, nil
}

// RestoreRule reconstructs a Rule from persistence, including its insertion
// sequence and active flag. It applies the same validation as NewRule.
func RestoreRule(
	id kernel.UUID,
	priority int,
	seq int64,
	matcher Matcher,
	stationID kernel.UUID,
	active bool,
) (*Rule, error) {
	rule, err := NewRule(id, priority, matcher, stationID)
	if err != nil {
		return nil, err
	}
	rule.seq = seq
	rule.active = active

	return rule, nil
}

// Validate ensures the Rule instance was properly constructed.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}

	return nil
}

// IsEqual compares two rules by their unique identifiers.
func (r *Rule) IsEqual(other *Rule) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID {
	return r.id
}

// Priority returns the evaluation priority, lower first.
func (r *Rule) Priority() int {
	return r.priority
}

// Seq returns the insertion sequence used to break priority ties.
func (r *Rule) Seq() int64 {
	return r.seq
}

// SetSeq records the insertion sequence assigned by the store.
func (r *Rule) SetSeq(seq int64) {
	r.seq = seq
}

// Matcher returns the rule's predicate.
func (r *Rule) Matcher() Matcher {
	return r.matcher
}

// StationID returns the id of the station this rule routes to.
func (r *Rule) StationID() kernel.UUID {
	return r.stationID
}

// IsActive reports whether the rule participates in routing.
func (r *Rule) IsActive() bool {
	return r.active
}

// Deactivate excludes the rule from routing without deleting it.
func (r *Rule) Deactivate() {
	r.active = false
}

// Matches reports whether the rule's predicate selects the given item.
func (r *Rule) Matches(subject Subject) bool {
	return r.active && r.matcher.Matches(subject)
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setMatcher(matcher Matcher) error {
	if matcher == nil {
		return ErrMatcherIsRequired
	}
	r.matcher = matcher
	return nil
}

func (r *Rule) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}
	r.stationID = stationID
	return nil
}

func (r *Rule) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsOutOfRangeError("priority", priority, 0, math.MaxInt)
	}
	r.priority = priority
	return nil
}
