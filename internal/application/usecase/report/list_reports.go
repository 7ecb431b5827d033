package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ListReportsInput represents the input for listing report audit records.
type ListReportsInput struct {
	UserID uuid.UUID
}

// ListReportsOutput represents the output of a report history listing.
type ListReportsOutput struct {
	Reports []*entity.Report
}

// ListReportsUseCase returns the user's report generation history, newest
// first.
type ListReportsUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(reportRepo adapter.ReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
	}
}

// Execute lists the report audit records for a user.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	reports, err := uc.reportRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return &ListReportsOutput{Reports: reports}, nil
}
