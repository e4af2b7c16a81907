package station

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrStationIsNotConstructed is returned when a Station instance was not created
	// through the NewStation or RestoreStation factory methods.
	ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")
)

// Station represents a kitchen preparation station such as a grill, fry, cold or
// bar station. Tickets are routed to stations, so a station is the unit of work
// distribution in the kitchen.
//
// Station follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty display name
//   - Capability tags are kept in insertion order without duplicates
//   - Can only be created through NewStation or RestoreStation
type Station struct {
	id kernel.UUID

	// name is the operator-facing display name, unique across the registry
	name string

	// tags describe capabilities used by tag-based routing rules
	tags []string

	// active stations accept new tickets; deactivated ones are kept for history
	active bool

	// sortOrder controls display ordering on KDS screens
	sortOrder int

	isConstructed bool
}

// NewStation creates a new active Station with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must not be blank)
//   - tags: capability tags (duplicates and blank entries are rejected)
//   - sortOrder: display order, lower first
func NewStation(id kernel.UUID, name string, tags []string, sortOrder int) (*Station, error) {
	station := &Station{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		station.setID(id),
		station.setName(name),
		station.setTags(tags),
	); err != nil {
		return nil, err
	}
	station.sortOrder = sortOrder

	return station, nil
}

// RestoreStation reconstructs a Station from persistence, including its active flag.
// It applies the same validation as NewStation.
func RestoreStation(id kernel.UUID, name string, tags []string, active bool, sortOrder int) (*Station, error) {
	station, err := NewStation(id, name, tags, sortOrder)
	if err != nil {
		return nil, err
	}
	station.active = active

	return station, nil
}

// Validate ensures the Station instance was properly constructed.
func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}

	return nil
}

// IsEqual compares two stations by their unique identifiers.
func (s *Station) IsEqual(other *Station) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the station's unique identifier.
func (s *Station) ID() kernel.UUID {
	return s.id
}

// Name returns the station's display name.
func (s *Station) Name() string {
	return s.name
}

// Tags returns a copy of the station's capability tags.
func (s *Station) Tags() []string {
	tags := make([]string, len(s.tags))
	copy(tags, s.tags)
	return tags
}

// HasTag reports whether the station carries the given capability tag.
func (s *Station) HasTag(tag string) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsActive reports whether the station accepts new tickets.
func (s *Station) IsActive() bool {
	return s.active
}

// SortOrder returns the display order, lower first.
func (s *Station) SortOrder() int {
	return s.sortOrder
}

// Deactivate marks the station as no longer accepting tickets.
// Deactivating an already inactive station is a no-op.
func (s *Station) Deactivate() {
	s.active = false
}

// Activate returns the station to service.
func (s *Station) Activate() {
	s.active = true
}

// Rename changes the station's display name.
func (s *Station) Rename(name string) error {
	return s.setName(name)
}

func (s *Station) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Station) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Station) setTags(tags []string) error {
	seen := make(map[string]bool, len(tags))
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return errs.NewValueIsInvalidErrorWithCause("tags", errors.New("tag must not be blank"))
		}
		if seen[tag] {
			return errs.NewValueIsInvalidErrorWithCause("tags", fmt.Errorf("tag %q is duplicated", tag))
		}
		seen[tag] = true
		cleaned = append(cleaned, tag)
	}
	s.tags = cleaned
	return nil
}
