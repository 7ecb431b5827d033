// Package dashboard contains dashboard-related use cases.
package dashboard

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

// comparisonSpanDays is the length of each period-over-period comparison
// window. Two adjacent spans, ending today and 15 days ago, fit inside the
// 30-day history the trends query retrieves.
const comparisonSpanDays = 15

// GetTrendsInput represents the input for the trends query.
type GetTrendsInput struct {
	UserID uuid.UUID
	Window WindowKind
}

// ChangeValue is a period-over-period percentage that may be undefined when
// the previous period has no baseline. Undefined renders as "N/A".
type ChangeValue struct {
	Value   decimal.Decimal
	Defined bool
}

// TrendChange holds the period-over-period change per measure.
type TrendChange struct {
	Income  ChangeValue
	Expense ChangeValue
	Balance ChangeValue
}

// GetTrendsOutput represents the output of the trends query.
type GetTrendsOutput struct {
	Window  WindowKind
	Buckets []Bucket
	Change  TrendChange
}

// GetTrendsUseCase buckets a user's recent cash flow into calendar windows
// and computes the 15-day period-over-period change.
type GetTrendsUseCase struct {
	ledgerRepo adapter.LedgerRepository
	now        func() time.Time
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(ledgerRepo adapter.LedgerRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		ledgerRepo: ledgerRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source, for tests.
func (uc *GetTrendsUseCase) WithClock(now func() time.Time) *GetTrendsUseCase {
	uc.now = now
	return uc
}

// Execute retrieves the bucketized cash flow for the requested window kind.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	var count int
	switch input.Window {
	case WindowKindDaily:
		count = DefaultDailyWindowCount
	case WindowKindWeekly:
		count = DefaultWeeklyWindowCount
	default:
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidWindowKind,
			"window must be 'daily' or 'weekly'",
			domainerror.ErrInvalidWindowKind,
		)
	}

	today := uc.now()
	historyStart := truncateToDay(today).AddDate(0, 0, -2*comparisonSpanDays)

	incomes, err := uc.ledgerRepo.FindByUserKindAndRange(ctx, input.UserID, entity.EntryKindIncome, historyStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load income history: %w", err)
	}

	expenses, err := uc.ledgerRepo.FindByUserKindAndRange(ctx, input.UserID, entity.EntryKindExpense, historyStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense history: %w", err)
	}

	entries := make([]*entity.LedgerEntry, 0, len(incomes)+len(expenses))
	entries = append(entries, incomes...)
	entries = append(entries, expenses...)

	return &GetTrendsOutput{
		Window:  input.Window,
		Buckets: Bucketize(entries, input.Window, count, today),
		Change:  computeChange(entries, today),
	}, nil
}

// periodTotals holds decimal sums for one comparison span.
type periodTotals struct {
	income  decimal.Decimal
	expense decimal.Decimal
	balance decimal.Decimal
}

// sumPeriod sums entries whose date lies in [start, end], both ends inclusive.
func sumPeriod(entries []*entity.LedgerEntry, start, end time.Time) periodTotals {
	totals := periodTotals{
		income:  decimal.Zero,
		expense: decimal.Zero,
	}

	for _, entry := range entries {
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		if entry.Kind == entity.EntryKindIncome {
			totals.income = totals.income.Add(entry.Amount)
		} else {
			totals.expense = totals.expense.Add(entry.Amount)
		}
	}

	totals.balance = totals.income.Sub(totals.expense)
	return totals
}

// computeChange compares the span ending today against the adjacent span
// ending 15 days ago.
func computeChange(entries []*entity.LedgerEntry, today time.Time) TrendChange {
	currentEnd := today
	currentStart := today.AddDate(0, 0, -comparisonSpanDays)
	previousEnd := currentStart
	previousStart := currentStart.AddDate(0, 0, -comparisonSpanDays)

	current := sumPeriod(entries, currentStart, currentEnd)
	previous := sumPeriod(entries, previousStart, previousEnd)

	return TrendChange{
		Income:  toChangeValue(PercentChange(current.income, previous.income)),
		Expense: toChangeValue(PercentChange(current.expense, previous.expense)),
		Balance: toChangeValue(PercentChange(current.balance, previous.balance)),
	}
}

func toChangeValue(value decimal.Decimal, defined bool) ChangeValue {
	return ChangeValue{Value: value, Defined: defined}
}
