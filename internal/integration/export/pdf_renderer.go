// Package export renders assembled report datasets into downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// pdfRenderer implements the adapter.ReportRenderer interface for PDF
// documents.
type pdfRenderer struct {
	currencyCode string
}

// NewPDFRenderer creates a new PDF report renderer. Amounts are prefixed with
// the given currency code.
func NewPDFRenderer(currencyCode string) adapter.ReportRenderer {
	return &pdfRenderer{
		currencyCode: currencyCode,
	}
}

// ContentType returns the MIME type for pdf downloads.
func (r *pdfRenderer) ContentType() string {
	return "application/pdf"
}

// FileName returns the suggested attachment file name.
func (r *pdfRenderer) FileName() string {
	return "financial-report.pdf"
}

// Render produces a single document with a centered title and one subheading
// per populated section.
func (r *pdfRenderer) Render(data *entity.ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Financial Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if data.Incomes != nil {
		r.writeEntrySection(pdf, "Incomes", data.Incomes)
	}
	if data.Expenses != nil {
		r.writeEntrySection(pdf, "Expenses", data.Expenses)
	}
	if data.Budgets != nil {
		r.writeBudgetSection(pdf, data.Budgets)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) writeEntrySection(pdf *gofpdf.Fpdf, title string, entries []*entity.LedgerEntry) {
	r.writeSectionTitle(pdf, title)

	pdf.SetFont("Helvetica", "", 11)
	for _, entry := range entries {
		line := fmt.Sprintf("%s: %s %s - %s",
			entry.Label,
			r.currencyCode,
			entry.Amount.StringFixed(2),
			entry.Date.Format("Jan 2, 2006"),
		)
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *pdfRenderer) writeBudgetSection(pdf *gofpdf.Fpdf, budgets []*entity.Budget) {
	r.writeSectionTitle(pdf, "Budgets")

	pdf.SetFont("Helvetica", "", 11)
	for _, budget := range budgets {
		line := fmt.Sprintf("%s: %s %s planned (%s)",
			budget.Category,
			r.currencyCode,
			budget.PlannedAmount.StringFixed(2),
			budget.Period,
		)
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *pdfRenderer) writeSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}
