// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetView
}

// ListBudgetsUseCase lists a user's budgets joined with derived actual spend.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	tracker    *Tracker
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, tracker *Tracker) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		tracker:    tracker,
	}
}

// Execute lists all budgets for the user, newest first, each with actual spend.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	views, err := uc.tracker.WithActuals(ctx, budgets)
	if err != nil {
		return nil, err
	}

	return &ListBudgetsOutput{Budgets: views}, nil
}
