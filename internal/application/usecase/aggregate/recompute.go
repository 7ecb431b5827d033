// Package aggregate contains use cases that maintain the per-user ledger aggregate.
package aggregate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// RecomputeAggregateInput represents the input for an aggregate recompute.
type RecomputeAggregateInput struct {
	UserID uuid.UUID
}

// RecomputeAggregateOutput represents the output of an aggregate recompute.
type RecomputeAggregateOutput struct {
	Aggregate *entity.Aggregate
}

// RecomputeAggregateUseCase rebuilds a user's aggregate from scratch. Every
// ledger mutation triggers it synchronously before the request returns. The
// rescan is deliberately full rather than incremental: at the ledger sizes
// this system targets, correctness wins over the cost of re-summing, and a
// rescan self-heals any drift left by a previously failed recompute.
type RecomputeAggregateUseCase struct {
	ledgerRepo    adapter.LedgerRepository
	aggregateRepo adapter.AggregateRepository
}

// NewRecomputeAggregateUseCase creates a new RecomputeAggregateUseCase instance.
func NewRecomputeAggregateUseCase(
	ledgerRepo adapter.LedgerRepository,
	aggregateRepo adapter.AggregateRepository,
) *RecomputeAggregateUseCase {
	return &RecomputeAggregateUseCase{
		ledgerRepo:    ledgerRepo,
		aggregateRepo: aggregateRepo,
	}
}

// Execute rescans the user's full ledger, sums both entry kinds in decimal
// arithmetic and upserts the aggregate row. Concurrent recomputes race on
// that row and the last write wins; no lock or version check is applied.
func (uc *RecomputeAggregateUseCase) Execute(ctx context.Context, input RecomputeAggregateInput) (*RecomputeAggregateOutput, error) {
	totalIncome, err := uc.ledgerRepo.SumByUserAndKind(ctx, input.UserID, entity.EntryKindIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to sum incomes: %w", err)
	}

	totalExpense, err := uc.ledgerRepo.SumByUserAndKind(ctx, input.UserID, entity.EntryKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	aggregate := entity.NewZeroAggregate(input.UserID)
	aggregate.TotalIncome = totalIncome
	aggregate.TotalExpense = totalExpense
	aggregate.NetBalance = totalIncome.Sub(totalExpense)

	if err := uc.aggregateRepo.Upsert(ctx, aggregate); err != nil {
		return nil, fmt.Errorf("failed to upsert aggregate: %w", err)
	}

	return &RecomputeAggregateOutput{Aggregate: aggregate}, nil
}
