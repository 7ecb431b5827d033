package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// stubLedgerRepo sums entry amounts from a fixed slice. Only the methods the
// tracker touches are implemented; anything else panics via the embedded nil
// interface.
type stubLedgerRepo struct {
	adapter.LedgerRepository
	entries []*entity.LedgerEntry
}

func (s *stubLedgerRepo) SumByUserKindAndCategory(_ context.Context, userID uuid.UUID, kind entity.EntryKind, category string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, entry := range s.entries {
		if entry.UserID == userID && entry.Kind == kind && entry.Category == category {
			total = total.Add(entry.Amount)
		}
	}
	return total, nil
}

func expenseEntry(userID uuid.UUID, category string, amount int64) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Kind:     entity.EntryKindExpense,
		Label:    "stub expense",
		Amount:   decimal.NewFromInt(amount),
		Category: category,
	}
}

func TestTracker_WithActual(t *testing.T) {
	userID := uuid.New()
	otherUser := uuid.New()

	repo := &stubLedgerRepo{entries: []*entity.LedgerEntry{
		expenseEntry(userID, "Food", 10),
		expenseEntry(userID, "Food", 5),
		expenseEntry(userID, "Rent", 100),
		expenseEntry(otherUser, "Food", 999),
	}}
	tracker := NewTracker(repo)

	t.Run("actual is the category-scoped expense sum", func(t *testing.T) {
		budget := entity.NewBudget(userID, "Food", decimal.NewFromInt(20), entity.BudgetPeriodMonthly)

		view, err := tracker.WithActual(context.Background(), budget)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !view.ActualAmount.Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected actual 15, got %s", view.ActualAmount)
		}
		if !view.Progress().Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected progress 75, got %s", view.Progress())
		}
		if view.Status() != entity.BudgetStatusOnTrack {
			t.Errorf("expected status on_track, got %s", view.Status())
		}
	})

	t.Run("other categories do not bleed in", func(t *testing.T) {
		budget := entity.NewBudget(userID, "Rent", decimal.NewFromInt(200), entity.BudgetPeriodMonthly)

		view, err := tracker.WithActual(context.Background(), budget)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !view.ActualAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected actual 100, got %s", view.ActualAmount)
		}
	})

	t.Run("unknown category yields zero actual", func(t *testing.T) {
		budget := entity.NewBudget(userID, "Travel", decimal.NewFromInt(50), entity.BudgetPeriodYearly)

		view, err := tracker.WithActual(context.Background(), budget)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !view.ActualAmount.IsZero() {
			t.Errorf("expected zero actual, got %s", view.ActualAmount)
		}
		if view.Status() != entity.BudgetStatusOnTrack {
			t.Errorf("expected status on_track, got %s", view.Status())
		}
	})
}

func TestTracker_WithActuals(t *testing.T) {
	userID := uuid.New()

	repo := &stubLedgerRepo{entries: []*entity.LedgerEntry{
		expenseEntry(userID, "Food", 30),
		expenseEntry(userID, "Rent", 120),
	}}
	tracker := NewTracker(repo)

	budgets := []*entity.Budget{
		entity.NewBudget(userID, "Rent", decimal.NewFromInt(100), entity.BudgetPeriodMonthly),
		entity.NewBudget(userID, "Food", decimal.NewFromInt(40), entity.BudgetPeriodWeekly),
	}

	views, err := tracker.WithActuals(context.Background(), budgets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	// Order must follow the input slice.
	if views[0].Budget.Category != "Rent" || views[1].Budget.Category != "Food" {
		t.Errorf("expected input order preserved, got %s then %s", views[0].Budget.Category, views[1].Budget.Category)
	}

	if !views[0].ActualAmount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected Rent actual 120, got %s", views[0].ActualAmount)
	}
	if views[0].Status() != entity.BudgetStatusExceeded {
		t.Errorf("expected Rent status exceeded, got %s", views[0].Status())
	}
	if views[1].Status() != entity.BudgetStatusOnTrack {
		t.Errorf("expected Food status on_track, got %s", views[1].Status())
	}
}
