// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category      string          `gorm:"type:varchar(100);not null"`
	PlannedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period        string          `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Budget{
		ID:            m.ID,
		UserID:        m.UserID,
		Category:      m.Category,
		PlannedAmount: m.PlannedAmount,
		Period:        entity.BudgetPeriod(m.Period),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var deletedAt gorm.DeletedAt
	if budget.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *budget.DeletedAt, Valid: true}
	}

	return &BudgetModel{
		ID:            budget.ID,
		UserID:        budget.UserID,
		Category:      budget.Category,
		PlannedAmount: budget.PlannedAmount,
		Period:        string(budget.Period),
		CreatedAt:     budget.CreatedAt,
		UpdatedAt:     budget.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
