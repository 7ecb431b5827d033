// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Category      *string
	PlannedAmount *decimal.Decimal
	Period        *entity.BudgetPeriod
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.BudgetView
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	tracker    *Tracker
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, tracker *Tracker) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		tracker:    tracker,
	}
}

// Execute performs a partial update of a budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByIDAndUser(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeMissingBudgetCategory,
				"budget category is required",
				domainerror.ErrMissingBudgetCategory,
			)
		}
		budget.Category = *input.Category
	}

	if input.PlannedAmount != nil {
		if input.PlannedAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidPlannedAmount,
				"planned amount must be greater than zero",
				domainerror.ErrInvalidPlannedAmount,
			)
		}
		budget.PlannedAmount = *input.PlannedAmount
	}

	if input.Period != nil {
		if !isValidBudgetPeriod(*input.Period) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be 'weekly', 'monthly', or 'yearly'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		budget.Period = *input.Period
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	view, err := uc.tracker.WithActual(ctx, budget)
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget actual: %w", err)
	}

	return &UpdateBudgetOutput{Budget: view}, nil
}
