// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-ledger/backend/internal/application/usecase/report"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// GenerateReportRequest represents the request body for report generation.
type GenerateReportRequest struct {
	ReportType string `json:"report_type" binding:"required,oneof=income expense budget summary"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

// ReportBudgetResponse represents one budget row in a report payload.
type ReportBudgetResponse struct {
	Category      string `json:"category"`
	PlannedAmount string `json:"planned_amount"`
	Period        string `json:"period"`
}

// ReportDataResponse represents the assembled dataset in API responses. Only
// the sections selected by the report type are present.
type ReportDataResponse struct {
	Incomes  []EntryResponse        `json:"incomes,omitempty"`
	Expenses []EntryResponse        `json:"expenses,omitempty"`
	Budgets  []ReportBudgetResponse `json:"budgets,omitempty"`
}

// ReportResponse represents one report generation in API responses.
type ReportResponse struct {
	ID          string             `json:"id"`
	ReportType  string             `json:"report_type"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	GeneratedAt time.Time          `json:"generated_at"`
	Data        ReportDataResponse `json:"data"`
}

// ReportAuditResponse represents one report audit record, without data.
type ReportAuditResponse struct {
	ID          string    `json:"id"`
	ReportType  string    `json:"report_type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ReportListResponse represents the report history in API responses.
type ReportListResponse struct {
	Reports []ReportAuditResponse `json:"reports"`
}

// ToReportResponse converts an assemble use case output to a ReportResponse DTO.
func ToReportResponse(output *report.AssembleReportOutput) ReportResponse {
	return ReportResponse{
		ID:          output.Report.ID.String(),
		ReportType:  string(output.Report.ReportType),
		StartDate:   output.Report.StartDate.Format("2006-01-02"),
		EndDate:     output.Report.EndDate.Format("2006-01-02"),
		GeneratedAt: output.Report.GeneratedAt,
		Data: ReportDataResponse{
			Incomes:  toReportEntries(output.Data.Incomes),
			Expenses: toReportEntries(output.Data.Expenses),
			Budgets:  toReportBudgets(output.Data.Budgets),
		},
	}
}

// ToReportListResponse converts domain Report records to a ReportListResponse DTO.
func ToReportListResponse(reports []*entity.Report) ReportListResponse {
	responses := make([]ReportAuditResponse, len(reports))
	for i, record := range reports {
		responses[i] = ReportAuditResponse{
			ID:          record.ID.String(),
			ReportType:  string(record.ReportType),
			StartDate:   record.StartDate.Format("2006-01-02"),
			EndDate:     record.EndDate.Format("2006-01-02"),
			GeneratedAt: record.GeneratedAt,
		}
	}
	return ReportListResponse{Reports: responses}
}

func toReportEntries(entries []*entity.LedgerEntry) []EntryResponse {
	if entries == nil {
		return nil
	}
	return toRecentEntries(entries)
}

func toReportBudgets(budgets []*entity.Budget) []ReportBudgetResponse {
	if budgets == nil {
		return nil
	}
	responses := make([]ReportBudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ReportBudgetResponse{
			Category:      budget.Category,
			PlannedAmount: budget.PlannedAmount.StringFixed(2),
			Period:        string(budget.Period),
		}
	}
	return responses
}
