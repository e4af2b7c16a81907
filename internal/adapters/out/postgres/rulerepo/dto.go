// Package rulerepo provides data transfer objects and mapping functions for
// routing rule persistence. Rules store their predicate as a kind/value pair
// and reconstruct the concrete matcher on load.
package rulerepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/routing"

	"github.com/google/uuid"
)

// RuleDTO represents the database structure for persisting routing rules.
// Seq is assigned by the database on insert and breaks priority ties in
// creation order.
type RuleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Priority   int       `gorm:"index"`
	Seq        int64     `gorm:"autoIncrement;uniqueIndex"`
	MatchKind  string
	MatchValue string
	StationID  uuid.UUID `gorm:"type:uuid;index"`
	Active     bool      `gorm:"index"`
}

// TableName specifies the database table name for routing rules.
func (RuleDTO) TableName() string {
	return "routing_rules"
}

// fromDomain converts a rule to its database representation.
func fromDomain(rule *routing.Rule) RuleDTO {
	return RuleDTO{
		ID:         rule.ID().Bytes(),
		Priority:   rule.Priority(),
		Seq:        rule.Seq(),
		MatchKind:  rule.Matcher().Kind().String(),
		MatchValue: rule.Matcher().Value(),
		StationID:  rule.StationID().Bytes(),
		Active:     rule.IsActive(),
	}
}

// toDomain converts a database row to a rule, rebuilding the predicate.
func toDomain(dto RuleDTO) (*routing.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stationID, err := kernel.UUIDFromBytes(dto.StationID[:])
	if err != nil {
		return nil, err
	}

	kind, err := routing.MatchKindFromString(dto.MatchKind)
	if err != nil {
		return nil, err
	}

	matcher, err := routing.NewMatcher(kind, dto.MatchValue)
	if err != nil {
		return nil, err
	}

	return routing.RestoreRule(id, dto.Priority, dto.Seq, matcher, stationID, dto.Active)
}
