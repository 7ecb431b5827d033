package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

func TestToBudgetResponse(t *testing.T) {
	userID := uuid.New()

	t.Run("overspent budget keeps the raw progress next to the clamped one", func(t *testing.T) {
		view := &entity.BudgetView{
			Budget:       entity.NewBudget(userID, "Food", decimal.NewFromInt(100), entity.BudgetPeriodMonthly),
			ActualAmount: decimal.NewFromInt(150),
		}

		response := ToBudgetResponse(view)

		if response.Progress != "100.0" {
			t.Errorf("expected clamped progress 100.0, got %q", response.Progress)
		}
		if response.ProgressRaw != "150.0" {
			t.Errorf("expected raw progress 150.0, got %q", response.ProgressRaw)
		}
		if response.Status != "exceeded" {
			t.Errorf("expected status exceeded, got %q", response.Status)
		}
	})

	t.Run("under budget both progress fields agree", func(t *testing.T) {
		view := &entity.BudgetView{
			Budget:       entity.NewBudget(userID, "Food", decimal.NewFromInt(200), entity.BudgetPeriodMonthly),
			ActualAmount: decimal.NewFromInt(50),
		}

		response := ToBudgetResponse(view)

		if response.Progress != "25.0" {
			t.Errorf("expected progress 25.0, got %q", response.Progress)
		}
		if response.ProgressRaw != "25.0" {
			t.Errorf("expected raw progress 25.0, got %q", response.ProgressRaw)
		}
		if response.ActualAmount != "50.00" {
			t.Errorf("expected actual amount 50.00, got %q", response.ActualAmount)
		}
	})
}
