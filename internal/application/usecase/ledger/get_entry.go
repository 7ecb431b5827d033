// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// GetEntryInput represents the input for a single entry lookup.
type GetEntryInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Kind   entity.EntryKind
}

// GetEntryOutput represents the output of a single entry lookup.
type GetEntryOutput struct {
	Entry *EntryOutput
}

// GetEntryUseCase handles single ledger entry retrieval.
type GetEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(ledgerRepo adapter.LedgerRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves one ledger entry owned by the user.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	entry, err := uc.ledgerRepo.FindByIDAndUser(ctx, input.ID, input.UserID)
	if err != nil || entry.Kind != input.Kind {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEntryNotFound,
			"ledger entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	return &GetEntryOutput{Entry: toEntryOutput(entry)}, nil
}
