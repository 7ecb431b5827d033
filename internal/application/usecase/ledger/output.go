// Package ledger contains ledger entry use cases.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// EntryOutput represents a ledger entry in use case outputs.
type EntryOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      entity.EntryKind
	Label     string
	Amount    decimal.Decimal
	Date      time.Time
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// toEntryOutput converts a domain entry to an EntryOutput.
func toEntryOutput(entry *entity.LedgerEntry) *EntryOutput {
	return &EntryOutput{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Kind:      entry.Kind,
		Label:     entry.Label,
		Amount:    entry.Amount,
		Date:      entry.Date,
		Category:  entry.Category,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// isValidEntryKind validates the entry kind.
func isValidEntryKind(kind entity.EntryKind) bool {
	return kind == entity.EntryKindIncome || kind == entity.EntryKindExpense
}
