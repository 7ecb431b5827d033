// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing ledger entries.
type ListEntriesInput struct {
	UserID uuid.UUID
	Kind   entity.EntryKind
}

// ListEntriesOutput represents the output of listing ledger entries.
type ListEntriesOutput struct {
	Entries []*EntryOutput
}

// ListEntriesUseCase handles listing a user's ledger entries of one kind.
type ListEntriesUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(ledgerRepo adapter.LedgerRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute lists all entries of one kind for the user, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.ledgerRepo.FindByUserAndKind(ctx, input.UserID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	outputs := make([]*EntryOutput, len(entries))
	for i, entry := range entries {
		outputs[i] = toEntryOutput(entry)
	}

	return &ListEntriesOutput{Entries: outputs}, nil
}
