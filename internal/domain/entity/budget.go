// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the declared period of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// BudgetStatus classifies how far actual spend has progressed against plan.
type BudgetStatus string

const (
	BudgetStatusOnTrack  BudgetStatus = "on_track"
	BudgetStatusWarning  BudgetStatus = "warning"
	BudgetStatusExceeded BudgetStatus = "exceeded"
)

var (
	budgetWarningThreshold = decimal.NewFromInt(80)
	budgetLimit            = decimal.NewFromInt(100)
)

// Budget represents a planned spend limit for a category.
type Budget struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Category      string
	PlannedAmount decimal.Decimal
	Period        BudgetPeriod
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, plannedAmount decimal.Decimal, period BudgetPeriod) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		PlannedAmount: plannedAmount,
		Period:        period,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// BudgetView is a Budget joined with its derived actual spend. ActualAmount
// is the all-time sum of expense entries in the budget's category; the
// Period field does not scope it.
type BudgetView struct {
	Budget       *Budget
	ActualAmount decimal.Decimal
}

// Progress returns the raw, unclamped spend percentage (actual/planned*100).
func (v *BudgetView) Progress() decimal.Decimal {
	if v.Budget.PlannedAmount.IsZero() {
		return decimal.Zero
	}
	return v.ActualAmount.Div(v.Budget.PlannedAmount).Mul(budgetLimit)
}

// ClampedProgress returns the progress capped at 100 for rendering.
func (v *BudgetView) ClampedProgress() decimal.Decimal {
	progress := v.Progress()
	if progress.GreaterThan(budgetLimit) {
		return budgetLimit
	}
	return progress
}

// Status classifies the raw progress: on_track (<=80%), warning (80-100%],
// exceeded (>100%).
func (v *BudgetView) Status() BudgetStatus {
	progress := v.Progress()
	switch {
	case progress.GreaterThan(budgetLimit):
		return BudgetStatusExceeded
	case progress.GreaterThan(budgetWarningThreshold):
		return BudgetStatusWarning
	default:
		return BudgetStatusOnTrack
	}
}
