// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Append inserts a report audit record.
func (r *reportRepository) Append(ctx context.Context, report *entity.Report) error {
	reportModel := model.ReportFromEntity(report)
	result := r.db.WithContext(ctx).Create(reportModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves a user's report audit records, newest first.
func (r *reportRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error) {
	var reportModels []model.ReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.Report, len(reportModels))
	for i, rm := range reportModels {
		reports[i] = rm.ToEntity()
	}
	return reports, nil
}
