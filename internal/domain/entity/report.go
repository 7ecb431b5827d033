// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportType selects which sections populate a report dataset.
type ReportType string

const (
	ReportTypeIncome  ReportType = "income"
	ReportTypeExpense ReportType = "expense"
	ReportTypeBudget  ReportType = "budget"
	ReportTypeSummary ReportType = "summary"
)

// IncludesIncomes reports whether the income section is populated.
func (t ReportType) IncludesIncomes() bool {
	return t == ReportTypeIncome || t == ReportTypeSummary
}

// IncludesExpenses reports whether the expense section is populated.
func (t ReportType) IncludesExpenses() bool {
	return t == ReportTypeExpense || t == ReportTypeSummary
}

// IncludesBudgets reports whether the budget section is populated.
func (t ReportType) IncludesBudgets() bool {
	return t == ReportTypeBudget || t == ReportTypeSummary
}

// Report is a durable audit record of one report generation. The data
// payload itself is computed fresh on every call and never stored.
type Report struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ReportType  ReportType
	StartDate   time.Time
	EndDate     time.Time
	GeneratedAt time.Time
}

// NewReport creates a new Report audit record.
func NewReport(userID uuid.UUID, reportType ReportType, startDate, endDate time.Time) *Report {
	return &Report{
		ID:          uuid.New(),
		UserID:      userID,
		ReportType:  reportType,
		StartDate:   startDate,
		EndDate:     endDate,
		GeneratedAt: time.Now().UTC(),
	}
}

// ReportData is the dataset assembled for one report request. Only the
// sections selected by the report type are populated; budgets are never
// date-filtered.
type ReportData struct {
	Incomes  []*LedgerEntry
	Expenses []*LedgerEntry
	Budgets  []*Budget
}
