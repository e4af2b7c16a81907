package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/routing"
)

// RuleRepository defines the persistence contract for routing rules.
type RuleRepository interface {
	// Add persists a new rule and assigns its insertion sequence.
	Add(ctx context.Context, rule *routing.Rule) error

	// Update persists changes to an existing rule.
	Update(ctx context.Context, rule *routing.Rule) error

	// Get retrieves a rule by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*routing.Rule, error)

	// GetAllActive retrieves the active rule set ordered by priority then
	// insertion sequence. Fire loads this snapshot inside its transaction.
	GetAllActive(ctx context.Context) ([]*routing.Rule, error)

	// CountActiveForStation counts active rules targeting a station. Station
	// deactivation is refused while the count is non-zero.
	CountActiveForStation(ctx context.Context, stationID kernel.UUID) (int64, error)
}
