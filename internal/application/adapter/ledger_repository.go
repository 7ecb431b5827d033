// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// LedgerRepository defines the interface for ledger entry persistence operations.
type LedgerRepository interface {
	// Create creates a new ledger entry in the database.
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// FindByIDAndUser retrieves an entry by ID, scoped to its owner.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.LedgerEntry, error)

	// FindByUserAndKind retrieves all entries of one kind for a user, newest first.
	FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.EntryKind) ([]*entity.LedgerEntry, error)

	// FindRecentByUserAndKind retrieves the most recent entries of one kind, newest first.
	FindRecentByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.EntryKind, limit int) ([]*entity.LedgerEntry, error)

	// FindByUserKindAndRange retrieves entries of one kind whose date falls within
	// [startDate, endDate], both ends inclusive, oldest first.
	FindByUserKindAndRange(ctx context.Context, userID uuid.UUID, kind entity.EntryKind, startDate, endDate time.Time) ([]*entity.LedgerEntry, error)

	// SumByUserAndKind computes the decimal sum of all entry amounts of one kind.
	SumByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.EntryKind) (decimal.Decimal, error)

	// SumByUserKindAndCategory computes the decimal sum of all entry amounts of
	// one kind within a category, over all time.
	SumByUserKindAndCategory(ctx context.Context, userID uuid.UUID, kind entity.EntryKind, category string) (decimal.Decimal, error)

	// TotalsByCategory groups entries of one kind by category and sums each group.
	TotalsByCategory(ctx context.Context, userID uuid.UUID, kind entity.EntryKind) ([]*entity.CategoryTotal, error)

	// Update updates an existing ledger entry in the database.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// Delete soft-deletes a ledger entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
