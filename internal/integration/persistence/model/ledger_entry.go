// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
// Incomes and expenses share the table, discriminated by Kind.
type LedgerEntryModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind      string          `gorm:"type:varchar(10);not null;index"`
	Label     string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Category  string          `gorm:"type:varchar(100);index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationship (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.LedgerEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      entity.EntryKind(m.Kind),
		Label:     m.Label,
		Amount:    m.Amount,
		Date:      m.Date,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &LedgerEntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Kind:      string(entry.Kind),
		Label:     entry.Label,
		Amount:    entry.Amount,
		Date:      entry.Date,
		Category:  entry.Category,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
