// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// GetBudgetInput represents the input for a single budget lookup.
type GetBudgetInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// GetBudgetOutput represents the output of a single budget lookup.
type GetBudgetOutput struct {
	Budget *entity.BudgetView
}

// GetBudgetUseCase handles single budget retrieval with derived actual spend.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	tracker    *Tracker
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository, tracker *Tracker) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
		tracker:    tracker,
	}
}

// Execute retrieves one budget owned by the user, with actual spend.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByIDAndUser(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	view, err := uc.tracker.WithActual(ctx, budget)
	if err != nil {
		return nil, err
	}

	return &GetBudgetOutput{Budget: view}, nil
}
