// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// aggregateRepository implements the adapter.AggregateRepository interface.
type aggregateRepository struct {
	db *gorm.DB
}

// NewAggregateRepository creates a new aggregate repository instance.
func NewAggregateRepository(db *gorm.DB) adapter.AggregateRepository {
	return &aggregateRepository{
		db: db,
	}
}

// Get retrieves the aggregate row for a user. found is false when the user
// has no row yet.
func (r *aggregateRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.Aggregate, bool, error) {
	var aggregateModel model.AggregateModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&aggregateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return aggregateModel.ToEntity(), true, nil
}

// Upsert writes the aggregate row, replacing any existing values. Last write
// wins; concurrent recomputes both rescan the full ledger so either result is
// consistent with some recent state.
func (r *aggregateRepository) Upsert(ctx context.Context, aggregate *entity.Aggregate) error {
	aggregateModel := model.AggregateFromEntity(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_income", "total_expense", "net_balance", "updated_at"}),
		}).
		Create(aggregateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
