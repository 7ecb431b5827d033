// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/aggregate"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for ledger entry deletion.
type DeleteEntryInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Kind   entity.EntryKind
}

// DeleteEntryOutput represents the output of ledger entry deletion.
type DeleteEntryOutput struct {
	Message string
}

// DeleteEntryUseCase handles ledger entry deletion logic.
type DeleteEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	recompute  *aggregate.RecomputeAggregateUseCase
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(
	ledgerRepo adapter.LedgerRepository,
	recompute *aggregate.RecomputeAggregateUseCase,
) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		ledgerRepo: ledgerRepo,
		recompute:  recompute,
	}
}

// Execute deletes a ledger entry and refreshes the user's aggregate before
// returning.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
	entry, err := uc.ledgerRepo.FindByIDAndUser(ctx, input.ID, input.UserID)
	if err != nil || entry.Kind != input.Kind {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEntryNotFound,
			"ledger entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	if err := uc.ledgerRepo.Delete(ctx, entry.ID); err != nil {
		return nil, fmt.Errorf("failed to delete ledger entry: %w", err)
	}

	refreshAggregate(ctx, uc.recompute, input.UserID)

	return &DeleteEntryOutput{Message: "Entry deleted successfully"}, nil
}
