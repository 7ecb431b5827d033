// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind represents the kind of ledger entry (income or expense).
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// LedgerEntry represents a single income or expense record owned by a user.
// For income entries the label is the source of funds ("Salary"); for
// expense entries it is a description of the spend ("Rent").
type LedgerEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      EntryKind
	Label     string
	Amount    decimal.Decimal
	Date      time.Time
	Category  string // Optional, free-form
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewLedgerEntry creates a new LedgerEntry entity.
func NewLedgerEntry(
	userID uuid.UUID,
	kind EntryKind,
	label string,
	amount decimal.Decimal,
	date time.Time,
	category string,
) *LedgerEntry {
	now := time.Now().UTC()

	return &LedgerEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Label:     label,
		Amount:    amount,
		Date:      date,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryTotal represents the summed amount of entries sharing one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}
