// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Create creates a new ledger entry in the database.
func (r *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a ledger entry by its ID, scoped to its owner.
func (r *ledgerRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserAndKind retrieves all entries of one kind for a user, newest first.
func (r *ledgerRepository) FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.EntryKind) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntries(entryModels), nil
}

// FindRecentByUserAndKind retrieves the latest entries of one kind, newest first.
func (r *ledgerRepository) FindRecentByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.EntryKind, limit int) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntries(entryModels), nil
}

// FindByUserKindAndRange retrieves entries of one kind whose date lies in
// [startDate, endDate], both ends inclusive, oldest first.
func (r *ledgerRepository) FindByUserKindAndRange(ctx context.Context, userID uuid.UUID, kind entity.EntryKind, startDate, endDate time.Time) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC, created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntries(entryModels), nil
}

// SumByUserAndKind returns the total amount of one kind for a user.
func (r *ledgerRepository) SumByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.EntryKind) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// SumByUserKindAndCategory returns the total amount of one kind in one category.
func (r *ledgerRepository) SumByUserKindAndCategory(ctx context.Context, userID uuid.UUID, kind entity.EntryKind, category string) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND kind = ? AND category = ?", userID, string(kind), category).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// TotalsByCategory returns per-category totals of one kind, largest first.
// Entries without a category are grouped under the empty string.
func (r *ledgerRepository) TotalsByCategory(ctx context.Context, userID uuid.UUID, kind entity.EntryKind) ([]*entity.CategoryTotal, error) {
	var results []struct {
		Category string          `gorm:"column:category"`
		Total    decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select("category, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Group("category").
		Order("total DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	totals := make([]*entity.CategoryTotal, len(results))
	for i, res := range results {
		totals[i] = &entity.CategoryTotal{
			Category: res.Category,
			Total:    res.Total,
		}
	}
	return totals, nil
}

// Update updates an existing ledger entry.
func (r *ledgerRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"label":      entryModel.Label,
			"amount":     entryModel.Amount,
			"date":       entryModel.Date,
			"category":   entryModel.Category,
			"updated_at": entryModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// Delete soft-deletes a ledger entry by its ID.
func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LedgerEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

func toEntries(entryModels []model.LedgerEntryModel) []*entity.LedgerEntry {
	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries
}
