package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/aggregate"
	"github.com/finance-ledger/backend/internal/application/usecase/budget"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// recentEntryCount is how many of the latest entries per kind the dashboard
// shows.
const recentEntryCount = 5

// cashFlowWindowDays is the history length of the dashboard cash-flow chart.
const cashFlowWindowDays = 30

// GetDashboardInput represents the input for the dashboard query.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// GetDashboardOutput aggregates everything the dashboard screen renders in a
// single response.
type GetDashboardOutput struct {
	Aggregate         *entity.Aggregate
	RecentIncomes     []*entity.LedgerEntry
	RecentExpenses    []*entity.LedgerEntry
	Budgets           []*entity.BudgetView
	IncomeByCategory  []*entity.CategoryTotal
	ExpenseByCategory []*entity.CategoryTotal
	CashFlow          []Bucket
}

// GetDashboardUseCase composes the user's aggregate, recent activity, budget
// progress, category breakdowns and the 30-day cash-flow series.
type GetDashboardUseCase struct {
	fetchAggregate *aggregate.FetchAggregateUseCase
	ledgerRepo     adapter.LedgerRepository
	budgetRepo     adapter.BudgetRepository
	tracker        *budget.Tracker
	now            func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	fetchAggregate *aggregate.FetchAggregateUseCase,
	ledgerRepo adapter.LedgerRepository,
	budgetRepo adapter.BudgetRepository,
	tracker *budget.Tracker,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		fetchAggregate: fetchAggregate,
		ledgerRepo:     ledgerRepo,
		budgetRepo:     budgetRepo,
		tracker:        tracker,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source, for tests.
func (uc *GetDashboardUseCase) WithClock(now func() time.Time) *GetDashboardUseCase {
	uc.now = now
	return uc
}

// Execute assembles the dashboard for the given user.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	agg, err := uc.fetchAggregate.Execute(ctx, aggregate.FetchAggregateInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch aggregate: %w", err)
	}

	recentIncomes, err := uc.ledgerRepo.FindRecentByUserAndKind(ctx, input.UserID, entity.EntryKindIncome, recentEntryCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent incomes: %w", err)
	}

	recentExpenses, err := uc.ledgerRepo.FindRecentByUserAndKind(ctx, input.UserID, entity.EntryKindExpense, recentEntryCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent expenses: %w", err)
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	budgetViews, err := uc.tracker.WithActuals(ctx, budgets)
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget actuals: %w", err)
	}

	incomeByCategory, err := uc.ledgerRepo.TotalsByCategory(ctx, input.UserID, entity.EntryKindIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to load income category totals: %w", err)
	}

	expenseByCategory, err := uc.ledgerRepo.TotalsByCategory(ctx, input.UserID, entity.EntryKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense category totals: %w", err)
	}

	today := uc.now()
	flowStart := truncateToDay(today).AddDate(0, 0, -(cashFlowWindowDays - 1))

	flowIncomes, err := uc.ledgerRepo.FindByUserKindAndRange(ctx, input.UserID, entity.EntryKindIncome, flowStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash-flow incomes: %w", err)
	}

	flowExpenses, err := uc.ledgerRepo.FindByUserKindAndRange(ctx, input.UserID, entity.EntryKindExpense, flowStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash-flow expenses: %w", err)
	}

	flowEntries := make([]*entity.LedgerEntry, 0, len(flowIncomes)+len(flowExpenses))
	flowEntries = append(flowEntries, flowIncomes...)
	flowEntries = append(flowEntries, flowExpenses...)

	return &GetDashboardOutput{
		Aggregate:         agg.Aggregate,
		RecentIncomes:     recentIncomes,
		RecentExpenses:    recentExpenses,
		Budgets:           budgetViews,
		IncomeByCategory:  incomeByCategory,
		ExpenseByCategory: expenseByCategory,
		CashFlow:          Bucketize(flowEntries, WindowKindDaily, DefaultDailyWindowCount, today),
	}, nil
}
