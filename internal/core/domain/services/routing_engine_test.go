package services_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/routing"
	"orders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, name, category string, tags ...string) *order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(),
		name, category, tags,
		1, nil, "", nil,
	)
	require.NoError(t, err)
	return item
}

func categoryRule(t *testing.T, priority int, seq int64, category string, stationID kernel.UUID) *routing.Rule {
	t.Helper()
	matcher, err := routing.NewCategoryMatcher(category)
	require.NoError(t, err)
	rule, err := routing.RestoreRule(kernel.NewUUID(), priority, seq, matcher, stationID, true)
	require.NoError(t, err)
	return rule
}

func itemRule(t *testing.T, priority int, seq int64, productID kernel.UUID, stationID kernel.UUID) *routing.Rule {
	t.Helper()
	matcher, err := routing.NewItemMatcher(productID)
	require.NoError(t, err)
	rule, err := routing.RestoreRule(kernel.NewUUID(), priority, seq, matcher, stationID, true)
	require.NoError(t, err)
	return rule
}

func tagRule(t *testing.T, priority int, seq int64, tag string, stationID kernel.UUID) *routing.Rule {
	t.Helper()
	matcher, err := routing.NewTagMatcher(tag)
	require.NoError(t, err)
	rule, err := routing.RestoreRule(kernel.NewUUID(), priority, seq, matcher, stationID, true)
	require.NoError(t, err)
	return rule
}

func TestNewRoutingEngine(t *testing.T) {
	t.Run("rejects_invalid_mode", func(t *testing.T) {
		_, err := services.NewRoutingEngine(routing.ModeUnknown, nil)

		require.Error(t, err)
	})

	t.Run("rejects_invalid_default_station", func(t *testing.T) {
		var stationID kernel.UUID

		_, err := services.NewRoutingEngine(routing.Exclusive, &stationID)

		require.Error(t, err)
	})
}

func TestRoutingEngine_Resolve_Exclusive(t *testing.T) {
	engine, err := services.NewRoutingEngine(routing.Exclusive, nil)
	require.NoError(t, err)

	t.Run("picks_single_best_match", func(t *testing.T) {
		// Given
		grill := kernel.NewUUID()
		fry := kernel.NewUUID()
		item := newItem(t, "Burger", "mains")
		rules := []*routing.Rule{
			categoryRule(t, 10, 1, "mains", grill),
			categoryRule(t, 20, 2, "mains", fry),
		}

		// When
		stationIDs, err := engine.Resolve(item, rules)

		// Then
		require.NoError(t, err)
		require.Len(t, stationIDs, 1)
		assert.True(t, stationIDs[0].IsEqual(grill))
	})

	t.Run("product_rule_beats_category_rule", func(t *testing.T) {
		// product rules carry a lower priority than category rules
		grill := kernel.NewUUID()
		special := kernel.NewUUID()
		item := newItem(t, "Burger", "mains")
		rules := []*routing.Rule{
			categoryRule(t, 20, 1, "mains", grill),
			itemRule(t, 10, 2, item.ProductID(), special),
		}

		stationIDs, err := engine.Resolve(item, rules)

		require.NoError(t, err)
		require.Len(t, stationIDs, 1)
		assert.True(t, stationIDs[0].IsEqual(special))
	})

	t.Run("insertion_seq_breaks_priority_ties", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		item := newItem(t, "Burger", "mains")
		rules := []*routing.Rule{
			categoryRule(t, 10, 7, "mains", second),
			categoryRule(t, 10, 3, "mains", first),
		}

		stationIDs, err := engine.Resolve(item, rules)

		require.NoError(t, err)
		require.Len(t, stationIDs, 1)
		assert.True(t, stationIDs[0].IsEqual(first))
	})

	t.Run("inactive_rules_are_ignored", func(t *testing.T) {
		grill := kernel.NewUUID()
		backup := kernel.NewUUID()
		item := newItem(t, "Burger", "mains")
		inactive := categoryRule(t, 5, 1, "mains", grill)
		inactive.Deactivate()
		rules := []*routing.Rule{inactive, categoryRule(t, 10, 2, "mains", backup)}

		stationIDs, err := engine.Resolve(item, rules)

		require.NoError(t, err)
		require.Len(t, stationIDs, 1)
		assert.True(t, stationIDs[0].IsEqual(backup))
	})

	t.Run("tag_rules_match_item_tags", func(t *testing.T) {
		fryer := kernel.NewUUID()
		item := newItem(t, "Fries", "sides", "fried")
		rules := []*routing.Rule{tagRule(t, 10, 1, "fried", fryer)}

		stationIDs, err := engine.Resolve(item, rules)

		require.NoError(t, err)
		require.Len(t, stationIDs, 1)
		assert.True(t, stationIDs[0].IsEqual(fryer))
	})

	t.Run("no_match_without_default_is_unroutable", func(t *testing.T) {
		item := newItem(t, "Mystery", "unknown")

		_, err := engine.Resolve(item, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrUnroutableItem)
		assert.Contains(t, err.Error(), item.ID().String())
	})

	t.Run("no_match_with_default_falls_back", func(t *testing.T) {
		fallback := kernel.NewUUID()
		engineWithDefault, err := services.NewRoutingEngine(routing.Exclusive, &fallback)
		require.NoError(t, err)
		item := newItem(t, "Mystery", "unknown")

		stationIDs, err := engineWithDefault.Resolve(item, nil)

		require.NoError(t, err)
		require.Len(t, stationIDs, 1)
		assert.True(t, stationIDs[0].IsEqual(fallback))
	})
}

func TestRoutingEngine_Resolve_FanOut(t *testing.T) {
	engine, err := services.NewRoutingEngine(routing.FanOut, nil)
	require.NoError(t, err)

	t.Run("returns_all_stations_at_best_priority", func(t *testing.T) {
		grill := kernel.NewUUID()
		expo := kernel.NewUUID()
		fry := kernel.NewUUID()
		item := newItem(t, "Burger", "mains", "hot")
		rules := []*routing.Rule{
			categoryRule(t, 10, 1, "mains", grill),
			tagRule(t, 10, 2, "hot", expo),
			categoryRule(t, 20, 3, "mains", fry),
		}

		stationIDs, err := engine.Resolve(item, rules)

		require.NoError(t, err)
		require.Len(t, stationIDs, 2)
		assert.True(t, stationIDs[0].IsEqual(grill))
		assert.True(t, stationIDs[1].IsEqual(expo))
	})

	t.Run("de_duplicates_stations", func(t *testing.T) {
		grill := kernel.NewUUID()
		item := newItem(t, "Burger", "mains", "hot")
		rules := []*routing.Rule{
			categoryRule(t, 10, 1, "mains", grill),
			tagRule(t, 10, 2, "hot", grill),
		}

		stationIDs, err := engine.Resolve(item, rules)

		require.NoError(t, err)
		require.Len(t, stationIDs, 1)
	})
}

func TestRoutingEngine_ResolveOrder(t *testing.T) {
	engine, err := services.NewRoutingEngine(routing.Exclusive, nil)
	require.NoError(t, err)

	newOrder := func(t *testing.T, items ...*order.Item) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(), "20260831-0001", "T1",
			order.DineIn, order.Normal, "", time.Now(),
		)
		require.NoError(t, err)
		for _, item := range items {
			require.NoError(t, o.AddItem(item))
		}
		return o
	}

	t.Run("resolves_every_non_cancelled_item", func(t *testing.T) {
		// Given
		grill := kernel.NewUUID()
		bar := kernel.NewUUID()
		burger := newItem(t, "Burger", "mains")
		cola := newItem(t, "Cola", "drinks")
		cancelled := newItem(t, "Shake", "drinks")
		o := newOrder(t, burger, cola, cancelled)
		require.NoError(t, o.CancelItem(cancelled.ID(), time.Now()))
		rules := []*routing.Rule{
			categoryRule(t, 10, 1, "mains", grill),
			categoryRule(t, 10, 2, "drinks", bar),
		}

		// When
		routes, err := engine.ResolveOrder(o, rules)

		// Then
		require.NoError(t, err)
		require.Len(t, routes, 2)
		assert.True(t, routes[burger.ID()][0].IsEqual(grill))
		assert.True(t, routes[cola.ID()][0].IsEqual(bar))
		_, cancelledRouted := routes[cancelled.ID()]
		assert.False(t, cancelledRouted)
	})

	t.Run("fails_as_a_whole_when_any_item_is_unroutable", func(t *testing.T) {
		grill := kernel.NewUUID()
		burger := newItem(t, "Burger", "mains")
		mystery := newItem(t, "Mystery", "unknown")
		o := newOrder(t, burger, mystery)
		rules := []*routing.Rule{categoryRule(t, 10, 1, "mains", grill)}

		_, err := engine.ResolveOrder(o, rules)

		assert.ErrorIs(t, err, services.ErrUnroutableItem)
	})
}
