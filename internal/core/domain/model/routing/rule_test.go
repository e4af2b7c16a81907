package routing_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubject struct {
	productID kernel.UUID
	category  string
	tags      []string
}

func (f fakeSubject) ProductID() kernel.UUID { return f.productID }
func (f fakeSubject) Category() string       { return f.category }
func (f fakeSubject) Tags() []string         { return f.tags }

func TestNewItemMatcher(t *testing.T) {
	t.Run("matches_only_the_targeted_product", func(t *testing.T) {
		// Given
		productID := kernel.NewUUID()
		matcher, err := routing.NewItemMatcher(productID)
		require.NoError(t, err)

		// Then
		assert.Equal(t, routing.MatchByItem, matcher.Kind())
		assert.Equal(t, productID.String(), matcher.Value())
		assert.True(t, matcher.Matches(fakeSubject{productID: productID}))
		assert.False(t, matcher.Matches(fakeSubject{productID: kernel.NewUUID()}))
	})

	t.Run("fails_with_invalid_product_id", func(t *testing.T) {
		var productID kernel.UUID

		_, err := routing.NewItemMatcher(productID)

		require.Error(t, err)
	})
}

func TestNewCategoryMatcher(t *testing.T) {
	t.Run("matches_items_in_the_category", func(t *testing.T) {
		matcher, err := routing.NewCategoryMatcher("mains")
		require.NoError(t, err)

		assert.Equal(t, routing.MatchByCategory, matcher.Kind())
		assert.Equal(t, "mains", matcher.Value())
		assert.True(t, matcher.Matches(fakeSubject{category: "mains"}))
		assert.False(t, matcher.Matches(fakeSubject{category: "drinks"}))
	})

	t.Run("fails_with_empty_category", func(t *testing.T) {
		_, err := routing.NewCategoryMatcher("")

		require.Error(t, err)
	})
}

func TestNewTagMatcher(t *testing.T) {
	t.Run("matches_items_carrying_the_tag", func(t *testing.T) {
		matcher, err := routing.NewTagMatcher("fried")
		require.NoError(t, err)

		assert.Equal(t, routing.MatchByTag, matcher.Kind())
		assert.Equal(t, "fried", matcher.Value())
		assert.True(t, matcher.Matches(fakeSubject{tags: []string{"hot", "fried"}}))
		assert.False(t, matcher.Matches(fakeSubject{tags: []string{"cold"}}))
		assert.False(t, matcher.Matches(fakeSubject{}))
	})

	t.Run("fails_with_empty_tag", func(t *testing.T) {
		_, err := routing.NewTagMatcher("")

		require.Error(t, err)
	})
}

func TestMatchKind_String(t *testing.T) {
	assert.Equal(t, "Item", routing.MatchByItem.String())
	assert.Equal(t, "Category", routing.MatchByCategory.String())
	assert.Equal(t, "Tag", routing.MatchByTag.String())
	assert.Equal(t, "Unknown", routing.MatchUnknown.String())
	assert.Equal(t, "Unknown", routing.MatchKind(99).String())
}

func TestNewRule(t *testing.T) {
	t.Run("creates_active_rule", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		stationID := kernel.NewUUID()
		matcher, _ := routing.NewCategoryMatcher("mains")

		// When
		rule, err := routing.NewRule(id, 10, matcher, stationID)

		// Then
		require.NoError(t, err)
		require.NoError(t, rule.Validate())
		assert.True(t, rule.ID().IsEqual(id))
		assert.Equal(t, 10, rule.Priority())
		assert.True(t, rule.StationID().IsEqual(stationID))
		assert.True(t, rule.IsActive())
		assert.Equal(t, routing.MatchByCategory, rule.Matcher().Kind())
	})

	t.Run("fails_without_matcher", func(t *testing.T) {
		_, err := routing.NewRule(kernel.NewUUID(), 10, nil, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, routing.ErrMatcherIsRequired)
	})

	t.Run("fails_with_negative_priority", func(t *testing.T) {
		matcher, _ := routing.NewCategoryMatcher("mains")

		_, err := routing.NewRule(kernel.NewUUID(), -1, matcher, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("fails_with_invalid_station_id", func(t *testing.T) {
		matcher, _ := routing.NewCategoryMatcher("mains")
		var stationID kernel.UUID

		_, err := routing.NewRule(kernel.NewUUID(), 0, matcher, stationID)

		require.Error(t, err)
	})
}

func TestRestoreRule(t *testing.T) {
	t.Run("restores_seq_and_active_flag", func(t *testing.T) {
		matcher, _ := routing.NewTagMatcher("fried")

		rule, err := routing.RestoreRule(kernel.NewUUID(), 5, 42, matcher, kernel.NewUUID(), false)

		require.NoError(t, err)
		assert.Equal(t, int64(42), rule.Seq())
		assert.False(t, rule.IsActive())
	})
}

func TestRule_Validate(t *testing.T) {
	t.Run("zero_value_rule_is_not_constructed", func(t *testing.T) {
		var rule routing.Rule

		err := rule.Validate()

		require.Error(t, err)
		assert.Equal(t, routing.ErrRuleIsNotConstructed, err)
	})
}

func TestRule_Matches(t *testing.T) {
	t.Run("active_rule_delegates_to_matcher", func(t *testing.T) {
		matcher, _ := routing.NewCategoryMatcher("mains")
		rule, _ := routing.NewRule(kernel.NewUUID(), 0, matcher, kernel.NewUUID())

		assert.True(t, rule.Matches(fakeSubject{category: "mains"}))
		assert.False(t, rule.Matches(fakeSubject{category: "drinks"}))
	})

	t.Run("inactive_rule_never_matches", func(t *testing.T) {
		matcher, _ := routing.NewCategoryMatcher("mains")
		rule, _ := routing.NewRule(kernel.NewUUID(), 0, matcher, kernel.NewUUID())
		rule.Deactivate()

		assert.False(t, rule.Matches(fakeSubject{category: "mains"}))
	})
}
