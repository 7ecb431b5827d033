// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/aggregate"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// MaxLabelLength is the maximum allowed length for entry labels.
const MaxLabelLength = 255

// CreateEntryInput represents the input for ledger entry creation.
type CreateEntryInput struct {
	UserID   uuid.UUID
	Kind     entity.EntryKind
	Label    string
	Amount   decimal.Decimal
	Date     time.Time
	Category string
}

// CreateEntryOutput represents the output of ledger entry creation.
type CreateEntryOutput struct {
	Entry *EntryOutput
}

// CreateEntryUseCase handles ledger entry creation logic.
type CreateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	recompute  *aggregate.RecomputeAggregateUseCase
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	ledgerRepo adapter.LedgerRepository,
	recompute *aggregate.RecomputeAggregateUseCase,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		ledgerRepo: ledgerRepo,
		recompute:  recompute,
	}
}

// Execute performs the ledger entry creation and refreshes the user's
// aggregate before returning.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := validateEntryFields(input.Kind, input.Label, input.Amount, input.Date); err != nil {
		return nil, err
	}

	entry := entity.NewLedgerEntry(
		input.UserID,
		input.Kind,
		input.Label,
		input.Amount,
		input.Date,
		input.Category,
	)

	if err := uc.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	refreshAggregate(ctx, uc.recompute, input.UserID)

	return &CreateEntryOutput{Entry: toEntryOutput(entry)}, nil
}

// validateEntryFields checks the shared mutation invariants.
func validateEntryFields(kind entity.EntryKind, label string, amount decimal.Decimal, date time.Time) error {
	if !isValidEntryKind(kind) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryKind,
			"entry kind must be 'income' or 'expense'",
			domainerror.ErrInvalidEntryKind,
		)
	}

	if label == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingEntryLabel,
			"entry label is required",
			domainerror.ErrMissingEntryLabel,
		)
	}

	if len(label) > MaxLabelLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeLabelTooLong,
			fmt.Sprintf("entry label must not exceed %d characters", MaxLabelLength),
			domainerror.ErrLabelTooLong,
		)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryAmount,
			"entry amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	if date.IsZero() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryDate,
			"entry date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}

	return nil
}

// refreshAggregate recomputes the user's aggregate after a ledger mutation.
// The mutation has already committed; if the recompute cannot reach the
// store, the aggregate is left stale rather than failing the request, and
// the next successful recompute repairs it.
func refreshAggregate(ctx context.Context, recompute *aggregate.RecomputeAggregateUseCase, userID uuid.UUID) {
	if _, err := recompute.Execute(ctx, aggregate.RecomputeAggregateInput{UserID: userID}); err != nil {
		slog.Warn("Aggregate recompute failed, aggregate is stale until next recompute",
			"userID", userID,
			"error", err,
		)
	}
}
