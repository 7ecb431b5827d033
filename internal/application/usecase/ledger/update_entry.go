// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/aggregate"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for ledger entry update.
// Nil fields are left unchanged; Category distinguishes "not provided" (nil)
// from "clear" (pointer to empty string).
type UpdateEntryInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Kind     entity.EntryKind
	Label    *string
	Amount   *decimal.Decimal
	Date     *time.Time
	Category *string
}

// UpdateEntryOutput represents the output of ledger entry update.
type UpdateEntryOutput struct {
	Entry *EntryOutput
}

// UpdateEntryUseCase handles ledger entry update logic.
type UpdateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	recompute  *aggregate.RecomputeAggregateUseCase
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(
	ledgerRepo adapter.LedgerRepository,
	recompute *aggregate.RecomputeAggregateUseCase,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		ledgerRepo: ledgerRepo,
		recompute:  recompute,
	}
}

// Execute performs a partial update of a ledger entry and refreshes the
// user's aggregate before returning.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.ledgerRepo.FindByIDAndUser(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEntryNotFound,
			"ledger entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	// Entries cannot change kind; the route fixes it.
	if entry.Kind != input.Kind {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEntryNotFound,
			"ledger entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	if input.Label != nil {
		entry.Label = *input.Label
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Category != nil {
		entry.Category = *input.Category
	}

	if err := validateEntryFields(entry.Kind, entry.Label, entry.Amount, entry.Date); err != nil {
		return nil, err
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.ledgerRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}

	refreshAggregate(ctx, uc.recompute, input.UserID)

	return &UpdateEntryOutput{Entry: toEntryOutput(entry)}, nil
}
