// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// Tracker derives the actual spend for budgets at read time. Nothing is
// stored: the actual amount is always the all-time sum of expense entries in
// the budget's category, regardless of the budget's declared period. Scoping
// the sum to the period would change the numbers users have been seeing, so
// the historical behavior is kept.
type Tracker struct {
	ledgerRepo adapter.LedgerRepository
}

// NewTracker creates a new Tracker instance.
func NewTracker(ledgerRepo adapter.LedgerRepository) *Tracker {
	return &Tracker{
		ledgerRepo: ledgerRepo,
	}
}

// WithActual joins one budget with its derived actual spend.
func (t *Tracker) WithActual(ctx context.Context, budget *entity.Budget) (*entity.BudgetView, error) {
	actual, err := t.ledgerRepo.SumByUserKindAndCategory(ctx, budget.UserID, entity.EntryKindExpense, budget.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses for category %q: %w", budget.Category, err)
	}

	return &entity.BudgetView{
		Budget:       budget,
		ActualAmount: actual,
	}, nil
}

// WithActuals joins each budget with its derived actual spend, preserving order.
func (t *Tracker) WithActuals(ctx context.Context, budgets []*entity.Budget) ([]*entity.BudgetView, error) {
	views := make([]*entity.BudgetView, len(budgets))
	for i, budget := range budgets {
		view, err := t.WithActual(ctx, budget)
		if err != nil {
			return nil, err
		}
		views[i] = view
	}
	return views, nil
}
