// Package report contains use cases that assemble and audit report datasets.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// AssembleReportInput represents the input for a report generation.
type AssembleReportInput struct {
	UserID     uuid.UUID
	ReportType string
	StartDate  time.Time
	EndDate    time.Time
}

// AssembleReportOutput carries the audit record and the freshly computed
// dataset for one generation.
type AssembleReportOutput struct {
	Report *entity.Report
	Data   *entity.ReportData
}

// AssembleReportUseCase builds a report dataset from the ledger. The dataset
// is computed from current rows on every call; only the audit record is
// persisted, and persisting it is best-effort.
type AssembleReportUseCase struct {
	ledgerRepo adapter.LedgerRepository
	budgetRepo adapter.BudgetRepository
	reportRepo adapter.ReportRepository
}

// NewAssembleReportUseCase creates a new AssembleReportUseCase instance.
func NewAssembleReportUseCase(
	ledgerRepo adapter.LedgerRepository,
	budgetRepo adapter.BudgetRepository,
	reportRepo adapter.ReportRepository,
) *AssembleReportUseCase {
	return &AssembleReportUseCase{
		ledgerRepo: ledgerRepo,
		budgetRepo: budgetRepo,
		reportRepo: reportRepo,
	}
}

// Execute assembles the sections selected by the report type. Entries are
// filtered to [StartDate, EndDate], both ends inclusive; budgets are always
// included in full when the type selects them.
func (uc *AssembleReportUseCase) Execute(ctx context.Context, input AssembleReportInput) (*AssembleReportOutput, error) {
	reportType := entity.ReportType(input.ReportType)
	if !isValidReportType(reportType) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"report type must be 'income', 'expense', 'budget' or 'summary'",
			domainerror.ErrInvalidReportType,
		)
	}

	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingReportFields,
			"start date and end date are required",
			domainerror.ErrInvalidReportRange,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportRange,
			"end date must not precede start date",
			domainerror.ErrInvalidReportRange,
		)
	}

	data := &entity.ReportData{}

	if reportType.IncludesIncomes() {
		incomes, err := uc.ledgerRepo.FindByUserKindAndRange(ctx, input.UserID, entity.EntryKindIncome, input.StartDate, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to load incomes: %w", err)
		}
		data.Incomes = incomes
	}

	if reportType.IncludesExpenses() {
		expenses, err := uc.ledgerRepo.FindByUserKindAndRange(ctx, input.UserID, entity.EntryKindExpense, input.StartDate, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to load expenses: %w", err)
		}
		data.Expenses = expenses
	}

	if reportType.IncludesBudgets() {
		budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load budgets: %w", err)
		}
		data.Budgets = budgets
	}

	record := entity.NewReport(input.UserID, reportType, input.StartDate, input.EndDate)
	if err := uc.reportRepo.Append(ctx, record); err != nil {
		slog.Warn("Failed to persist report audit record, returning dataset anyway",
			"userID", input.UserID,
			"reportType", reportType,
			"error", err,
		)
	}

	return &AssembleReportOutput{Report: record, Data: data}, nil
}

func isValidReportType(t entity.ReportType) bool {
	switch t {
	case entity.ReportTypeIncome, entity.ReportTypeExpense, entity.ReportTypeBudget, entity.ReportTypeSummary:
		return true
	}
	return false
}
