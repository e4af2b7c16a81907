package routing

import (
	"fmt"

	"orders/internal/core/domain/model/kernel"
)

// Subject is the view of an order item that routing predicates inspect.
// order.Item satisfies it structurally, which keeps this package free of a
// dependency on the order aggregate.
type Subject interface {
	ProductID() kernel.UUID
	Category() string
	Tags() []string
}

// MatchKind discriminates the closed set of routing predicates.
// It is stored alongside the rule so persistence can reconstruct the
// concrete Matcher without reflection.
type MatchKind int

const (
	// MatchUnknown represents an invalid or undefined match kind.
	MatchUnknown MatchKind = iota

	// MatchByItem targets a single product by id. Highest-precision predicate.
	MatchByItem

	// MatchByCategory targets every product in a menu category.
	MatchByCategory

	// MatchByTag targets products carrying a capability tag.
	MatchByTag
)

func getMatchKindStrings() map[MatchKind]string {
	return map[MatchKind]string{
		MatchUnknown:    "Unknown",
		MatchByItem:     "Item",
		MatchByCategory: "Category",
		MatchByTag:      "Tag",
	}
}

// String returns the human-readable name of the match kind.
func (k MatchKind) String() string {
	if str, ok := getMatchKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// MatchKindFromString parses a stored match kind name.
func MatchKindFromString(value string) (MatchKind, error) {
	for kind, str := range getMatchKindStrings() {
		if kind != MatchUnknown && str == value {
			return kind, nil
		}
	}
	return MatchUnknown, fmt.Errorf("%q is not a valid match kind", value)
}

// NewMatcher reconstructs the concrete predicate from its stored kind and
// value.
func NewMatcher(kind MatchKind, value string) (Matcher, error) {
	switch kind {
	case MatchByItem:
		productID, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		matcher, err := NewItemMatcher(productID)
		if err != nil {
			return nil, err
		}
		return matcher, nil
	case MatchByCategory:
		matcher, err := NewCategoryMatcher(value)
		if err != nil {
			return nil, err
		}
		return matcher, nil
	case MatchByTag:
		matcher, err := NewTagMatcher(value)
		if err != nil {
			return nil, err
		}
		return matcher, nil
	default:
		return nil, fmt.Errorf("%d is not a valid match kind", kind)
	}
}

// Matcher is the routing predicate. Implementations are value objects and
// must be pure: Matches may be called concurrently on shared rule snapshots.
type Matcher interface {
	// Kind identifies the concrete predicate for persistence.
	Kind() MatchKind

	// Matches reports whether the predicate selects the given item.
	Matches(subject Subject) bool

	// Value returns the persisted predicate argument (product id, category
	// name or tag).
	Value() string
}

// ItemMatcher selects a single product by its id.
type ItemMatcher struct {
	productID kernel.UUID
}

// NewItemMatcher creates a predicate that matches one product.
func NewItemMatcher(productID kernel.UUID) (ItemMatcher, error) {
	if err := productID.Validate(); err != nil {
		return ItemMatcher{}, err
	}
	return ItemMatcher{productID: productID}, nil
}

// Kind returns MatchByItem.
func (m ItemMatcher) Kind() MatchKind {
	return MatchByItem
}

// Matches reports whether the item is the targeted product.
func (m ItemMatcher) Matches(subject Subject) bool {
	return m.productID.IsEqual(subject.ProductID())
}

// Value returns the targeted product id as a string.
func (m ItemMatcher) Value() string {
	return m.productID.String()
}

// ProductID returns the targeted product id.
func (m ItemMatcher) ProductID() kernel.UUID {
	return m.productID
}

// CategoryMatcher selects every product in a menu category.
type CategoryMatcher struct {
	category string
}

// NewCategoryMatcher creates a predicate that matches a menu category.
func NewCategoryMatcher(category string) (CategoryMatcher, error) {
	if category == "" {
		return CategoryMatcher{}, fmt.Errorf("category must not be empty")
	}
	return CategoryMatcher{category: category}, nil
}

// Kind returns MatchByCategory.
func (m CategoryMatcher) Kind() MatchKind {
	return MatchByCategory
}

// Matches reports whether the item belongs to the targeted category.
func (m CategoryMatcher) Matches(subject Subject) bool {
	return subject.Category() == m.category
}

// Value returns the targeted category name.
func (m CategoryMatcher) Value() string {
	return m.category
}

// TagMatcher selects products carrying a capability tag.
type TagMatcher struct {
	tag string
}

// NewTagMatcher creates a predicate that matches a product tag.
func NewTagMatcher(tag string) (TagMatcher, error) {
	if tag == "" {
		return TagMatcher{}, fmt.Errorf("tag must not be empty")
	}
	return TagMatcher{tag: tag}, nil
}

// Kind returns MatchByTag.
func (m TagMatcher) Kind() MatchKind {
	return MatchByTag
}

// Matches reports whether the item carries the targeted tag.
func (m TagMatcher) Matches(subject Subject) bool {
	for _, tag := range subject.Tags() {
		if tag == m.tag {
			return true
		}
	}
	return false
}

// Value returns the targeted tag.
func (m TagMatcher) Value() string {
	return m.tag
}
