// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID        uuid.UUID
	Category      string
	PlannedAmount decimal.Decimal
	Period        entity.BudgetPeriod
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.BudgetView
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	tracker    *Tracker
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, tracker *Tracker) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		tracker:    tracker,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetCategory,
			"budget category is required",
			domainerror.ErrMissingBudgetCategory,
		)
	}

	if input.PlannedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPlannedAmount,
			"planned amount must be greater than zero",
			domainerror.ErrInvalidPlannedAmount,
		)
	}

	if !isValidBudgetPeriod(input.Period) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'weekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Category, input.PlannedAmount, input.Period)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	view, err := uc.tracker.WithActual(ctx, budget)
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget actual: %w", err)
	}

	return &CreateBudgetOutput{Budget: view}, nil
}

// isValidBudgetPeriod validates the budget period.
func isValidBudgetPeriod(period entity.BudgetPeriod) bool {
	return period == entity.BudgetPeriodWeekly ||
		period == entity.BudgetPeriodMonthly ||
		period == entity.BudgetPeriodYearly
}
