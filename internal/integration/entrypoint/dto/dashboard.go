// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-ledger/backend/internal/application/usecase/dashboard"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// AggregateResponse represents the per-user totals in API responses.
type AggregateResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	NetBalance   string `json:"net_balance"`
}

// CategoryTotalResponse represents one category slice in a breakdown.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// BucketResponse represents one time bucket of the cash-flow series.
type BucketResponse struct {
	Label   string `json:"label"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// ChangeResponse represents a period-over-period change. Value is "N/A" when
// the previous period has no baseline.
type ChangeResponse struct {
	Value string `json:"value"`
}

// TrendChangeResponse groups the per-measure changes.
type TrendChangeResponse struct {
	Income  ChangeResponse `json:"income"`
	Expense ChangeResponse `json:"expense"`
	Balance ChangeResponse `json:"balance"`
}

// DashboardResponse represents the full dashboard payload.
type DashboardResponse struct {
	Aggregate         AggregateResponse       `json:"aggregate"`
	RecentIncomes     []EntryResponse         `json:"recent_incomes"`
	RecentExpenses    []EntryResponse         `json:"recent_expenses"`
	Budgets           []BudgetResponse        `json:"budgets"`
	IncomeByCategory  []CategoryTotalResponse `json:"income_by_category"`
	ExpenseByCategory []CategoryTotalResponse `json:"expense_by_category"`
	CashFlow          []BucketResponse        `json:"cash_flow"`
}

// TrendsResponse represents the bucketized trends payload.
type TrendsResponse struct {
	Window  string              `json:"window"`
	Buckets []BucketResponse    `json:"buckets"`
	Change  TrendChangeResponse `json:"change"`
}

// ToAggregateResponse converts a domain Aggregate to an AggregateResponse DTO.
func ToAggregateResponse(aggregate *entity.Aggregate) AggregateResponse {
	return AggregateResponse{
		TotalIncome:  aggregate.TotalIncome.StringFixed(2),
		TotalExpense: aggregate.TotalExpense.StringFixed(2),
		NetBalance:   aggregate.NetBalance.StringFixed(2),
	}
}

// ToDashboardResponse converts a dashboard use case output to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	return DashboardResponse{
		Aggregate:         ToAggregateResponse(output.Aggregate),
		RecentIncomes:     toRecentEntries(output.RecentIncomes),
		RecentExpenses:    toRecentEntries(output.RecentExpenses),
		Budgets:           ToBudgetListResponse(output.Budgets).Budgets,
		IncomeByCategory:  toCategoryTotals(output.IncomeByCategory),
		ExpenseByCategory: toCategoryTotals(output.ExpenseByCategory),
		CashFlow:          toBuckets(output.CashFlow),
	}
}

// ToTrendsResponse converts a trends use case output to a TrendsResponse DTO.
func ToTrendsResponse(output *dashboard.GetTrendsOutput) TrendsResponse {
	return TrendsResponse{
		Window:  string(output.Window),
		Buckets: toBuckets(output.Buckets),
		Change: TrendChangeResponse{
			Income:  toChangeResponse(output.Change.Income),
			Expense: toChangeResponse(output.Change.Expense),
			Balance: toChangeResponse(output.Change.Balance),
		},
	}
}

func toRecentEntries(entries []*entity.LedgerEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = EntryResponse{
			ID:        entry.ID.String(),
			UserID:    entry.UserID.String(),
			Kind:      string(entry.Kind),
			Label:     entry.Label,
			Amount:    entry.Amount.StringFixed(2),
			Date:      entry.Date.Format("2006-01-02"),
			Category:  entry.Category,
			CreatedAt: entry.CreatedAt,
			UpdatedAt: entry.UpdatedAt,
		}
	}
	return responses
}

func toCategoryTotals(totals []*entity.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(totals))
	for i, total := range totals {
		responses[i] = CategoryTotalResponse{
			Category: total.Category,
			Total:    total.Total.StringFixed(2),
		}
	}
	return responses
}

func toBuckets(buckets []dashboard.Bucket) []BucketResponse {
	responses := make([]BucketResponse, len(buckets))
	for i, bucket := range buckets {
		responses[i] = BucketResponse{
			Label:   bucket.Label,
			Start:   bucket.Start.Format("2006-01-02"),
			End:     bucket.End.Format("2006-01-02"),
			Income:  bucket.Income.StringFixed(2),
			Expense: bucket.Expense.StringFixed(2),
		}
	}
	return responses
}

func toChangeResponse(change dashboard.ChangeValue) ChangeResponse {
	if !change.Defined {
		return ChangeResponse{Value: "N/A"}
	}
	return ChangeResponse{Value: change.Value.StringFixed(1)}
}
