package services

import (
	"errors"
	"fmt"
	"sort"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/routing"
)

// ErrUnroutableItem is returned when no routing rule matches an item and no
// default station is configured. The wrapped message carries the item id.
var ErrUnroutableItem = errors.New("item cannot be routed to any station")

// RoutingEngine is the domain service that resolves which stations receive an
// order item when the order is fired.
//
// Key responsibilities:
//   - Evaluating the active rule set against each item
//   - Ordering matches by priority, insertion sequence breaking ties
//   - Applying the exclusive or fan-out mode
//   - Falling back to the default station when nothing matches
//
// Business rules:
//   - A resolution is never empty: it is at least one station or an error
//   - Exclusive mode picks the single best match
//   - Fan-out mode returns every station matched at the best priority,
//     de-duplicated, in rule order
//
// The engine is pure. Callers pass the rule snapshot loaded inside their own
// transaction; the engine itself reads nothing.
type RoutingEngine struct {
	mode             routing.Mode
	defaultStationID *kernel.UUID
}

// NewRoutingEngine creates a RoutingEngine with the given mode and optional
// default station.
func NewRoutingEngine(mode routing.Mode, defaultStationID *kernel.UUID) (RoutingEngine, error) {
	if err := mode.Validate(); err != nil {
		return RoutingEngine{}, err
	}
	if defaultStationID != nil {
		if err := defaultStationID.Validate(); err != nil {
			return RoutingEngine{}, err
		}
	}

	return RoutingEngine{
		mode:             mode,
		defaultStationID: defaultStationID,
	}, nil
}

// Mode returns the configured routing mode.
func (e RoutingEngine) Mode() routing.Mode {
	return e.mode
}

// Resolve returns the ordered, de-duplicated station set for a single item.
//
// Returns ErrUnroutableItem when no rule matches and no default station is
// configured. The result is never empty on success.
func (e RoutingEngine) Resolve(item *order.Item, rules []*routing.Rule) ([]kernel.UUID, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	matched := make([]*routing.Rule, 0, len(rules))
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		if rule.Matches(item) {
			matched = append(matched, rule)
		}
	}

	if len(matched) == 0 {
		if e.defaultStationID != nil {
			return []kernel.UUID{*e.defaultStationID}, nil
		}
		return nil, fmt.Errorf("%w: item %s (%s)", ErrUnroutableItem, item.ID(), item.Name())
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Priority() != matched[j].Priority() {
			return matched[i].Priority() < matched[j].Priority()
		}
		return matched[i].Seq() < matched[j].Seq()
	})

	if e.mode == routing.Exclusive {
		return []kernel.UUID{matched[0].StationID()}, nil
	}

	// fan-out: every station matched at the best priority, in rule order
	bestPriority := matched[0].Priority()
	seen := make(map[kernel.UUID]bool)
	stationIDs := make([]kernel.UUID, 0, len(matched))
	for _, rule := range matched {
		if rule.Priority() != bestPriority {
			break
		}
		if seen[rule.StationID()] {
			continue
		}
		seen[rule.StationID()] = true
		stationIDs = append(stationIDs, rule.StationID())
	}

	return stationIDs, nil
}

// ResolveOrder resolves every non-cancelled item of an order against the rule
// snapshot, producing the routes map consumed by Order.Fire. Resolution fails
// as a whole when any item is unroutable, so a fire never partially routes.
func (e RoutingEngine) ResolveOrder(o *order.Order, rules []*routing.Rule) (map[kernel.UUID][]kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	routes := make(map[kernel.UUID][]kernel.UUID)
	for _, item := range o.Items() {
		if item.IsCancelled() {
			continue
		}
		stationIDs, err := e.Resolve(item, rules)
		if err != nil {
			return nil, err
		}
		routes[item.ID()] = stationIDs
	}

	return routes, nil
}
