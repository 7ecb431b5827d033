// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate holds the denormalized running totals for one user's ledger.
// After a successful recompute, NetBalance == TotalIncome - TotalExpense
// exactly. Between a ledger mutation and the next recompute the row may be
// stale; readers receive it as-is.
type Aggregate struct {
	UserID       uuid.UUID
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetBalance   decimal.Decimal
	UpdatedAt    time.Time
}

// NewZeroAggregate creates an empty aggregate for a user that has no stored
// row yet. Aggregates are created lazily on first access.
func NewZeroAggregate(userID uuid.UUID) *Aggregate {
	return &Aggregate{
		UserID:       userID,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		NetBalance:   decimal.Zero,
		UpdatedAt:    time.Now().UTC(),
	}
}
