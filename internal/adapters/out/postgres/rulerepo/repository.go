package rulerepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/routing"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRuleRepository implements RuleRepository using GORM.
type GormRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRuleRepository creates a new GORM rule repository.
func NewGormRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormRuleRepository {
	return &GormRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rule and feeds the database-assigned insertion sequence
// back into the aggregate.
func (r *GormRuleRepository) Add(ctx context.Context, rule *routing.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	dto.Seq = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	rule.SetSeq(dto.Seq)

	r.tracker.TrackAggregate(rule.ID(), rule)
	return nil
}

// Update saves an existing rule to the database.
func (r *GormRuleRepository) Update(ctx context.Context, rule *routing.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	result := r.db.WithContext(ctx).Model(&RuleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("ID", "Seq").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rule", rule.ID().String())
	}

	r.tracker.TrackAggregate(rule.ID(), rule)
	return nil
}

// Get retrieves a rule by ID.
func (r *GormRuleRepository) Get(ctx context.Context, id kernel.UUID) (*routing.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves the active rule set ordered by priority then
// insertion sequence.
func (r *GormRuleRepository) GetAllActive(ctx context.Context) ([]*routing.Rule, error) {
	var dtos []RuleDTO
	err := r.db.WithContext(ctx).
		Where("active").
		Order("priority, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*routing.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, ruleErr := toDomain(dto)
		if ruleErr != nil {
			return nil, ruleErr
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// CountActiveForStation counts active rules targeting a station.
func (r *GormRuleRepository) CountActiveForStation(ctx context.Context, stationID kernel.UUID) (int64, error) {
	if err := stationID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RuleDTO{}).
		Where("station_id = ? AND active", stationID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
