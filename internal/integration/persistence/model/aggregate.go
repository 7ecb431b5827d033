// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// AggregateModel represents the aggregates table, one row per user.
type AggregateModel struct {
	UserID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TotalIncome  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalExpense decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NetBalance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AggregateModel.
func (AggregateModel) TableName() string {
	return "aggregates"
}

// ToEntity converts an AggregateModel to a domain Aggregate entity.
func (m *AggregateModel) ToEntity() *entity.Aggregate {
	return &entity.Aggregate{
		UserID:       m.UserID,
		TotalIncome:  m.TotalIncome,
		TotalExpense: m.TotalExpense,
		NetBalance:   m.NetBalance,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AggregateFromEntity creates an AggregateModel from a domain Aggregate entity.
func AggregateFromEntity(aggregate *entity.Aggregate) *AggregateModel {
	return &AggregateModel{
		UserID:       aggregate.UserID,
		TotalIncome:  aggregate.TotalIncome,
		TotalExpense: aggregate.TotalExpense,
		NetBalance:   aggregate.NetBalance,
		UpdatedAt:    aggregate.UpdatedAt,
	}
}
