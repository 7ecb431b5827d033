// Package export renders assembled report datasets into downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

const xlsxSheetName = "Financial Report"

// xlsxRenderer implements the adapter.ReportRenderer interface for Excel
// workbooks.
type xlsxRenderer struct{}

// NewXLSXRenderer creates a new XLSX report renderer.
func NewXLSXRenderer() adapter.ReportRenderer {
	return &xlsxRenderer{}
}

// ContentType returns the MIME type for xlsx downloads.
func (r *xlsxRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName returns the suggested attachment file name.
func (r *xlsxRenderer) FileName() string {
	return "financial-report.xlsx"
}

// Render writes every populated section onto a single sheet, one section
// after another with a blank separator row. Amounts and dates are written as
// raw cell values so spreadsheet formulas keep working on them.
func (r *xlsxRenderer) Render(data *entity.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	row := 1

	if data.Incomes != nil {
		row, err = r.writeEntrySection(f, row, "Incomes", "Source", data.Incomes)
		if err != nil {
			return nil, err
		}
	}

	if data.Expenses != nil {
		row, err = r.writeEntrySection(f, row, "Expenses", "Description", data.Expenses)
		if err != nil {
			return nil, err
		}
	}

	if data.Budgets != nil {
		if _, err = r.writeBudgetSection(f, row, data.Budgets); err != nil {
			return nil, err
		}
	}

	f.SetColWidth(xlsxSheetName, "A", "A", 30)
	f.SetColWidth(xlsxSheetName, "B", "B", 15)
	f.SetColWidth(xlsxSheetName, "C", "C", 14)
	f.SetColWidth(xlsxSheetName, "D", "D", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeEntrySection emits one ledger section and returns the next free row.
func (r *xlsxRenderer) writeEntrySection(f *excelize.File, row int, title, labelHeader string, entries []*entity.LedgerEntry) (int, error) {
	if err := f.SetCellValue(xlsxSheetName, fmt.Sprintf("A%d", row), title); err != nil {
		return row, fmt.Errorf("failed to write section title: %w", err)
	}
	row++

	headers := []string{labelHeader, "Amount", "Date", "Category"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c%d", 'A'+i, row)
		if err := f.SetCellValue(xlsxSheetName, cell, header); err != nil {
			return row, fmt.Errorf("failed to write header: %w", err)
		}
	}
	row++

	for _, entry := range entries {
		amount, _ := entry.Amount.Float64()
		// The date is written as a time.Time so the cell carries a real
		// date value instead of display text.
		values := []any{entry.Label, amount, entry.Date, entry.Category}
		for i, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+i, row)
			if err := f.SetCellValue(xlsxSheetName, cell, value); err != nil {
				return row, fmt.Errorf("failed to write entry row: %w", err)
			}
		}
		row++
	}

	// Blank separator between sections
	return row + 1, nil
}

// writeBudgetSection emits the budget section and returns the next free row.
func (r *xlsxRenderer) writeBudgetSection(f *excelize.File, row int, budgets []*entity.Budget) (int, error) {
	if err := f.SetCellValue(xlsxSheetName, fmt.Sprintf("A%d", row), "Budgets"); err != nil {
		return row, fmt.Errorf("failed to write section title: %w", err)
	}
	row++

	headers := []string{"Category", "Planned Amount", "Period"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c%d", 'A'+i, row)
		if err := f.SetCellValue(xlsxSheetName, cell, header); err != nil {
			return row, fmt.Errorf("failed to write header: %w", err)
		}
	}
	row++

	for _, budget := range budgets {
		planned, _ := budget.PlannedAmount.Float64()
		values := []any{budget.Category, planned, string(budget.Period)}
		for i, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+i, row)
			if err := f.SetCellValue(xlsxSheetName, cell, value); err != nil {
				return row, fmt.Errorf("failed to write budget row: %w", err)
			}
		}
		row++
	}

	return row + 1, nil
}
