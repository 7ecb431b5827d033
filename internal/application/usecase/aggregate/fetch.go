// Package aggregate contains use cases that maintain the per-user ledger aggregate.
package aggregate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// FetchAggregateInput represents the input for an aggregate read.
type FetchAggregateInput struct {
	UserID uuid.UUID
}

// FetchAggregateOutput represents the output of an aggregate read.
type FetchAggregateOutput struct {
	Aggregate *entity.Aggregate
}

// FetchAggregateUseCase returns the stored aggregate, creating a zeroed row
// on first access. The stored value is returned as-is even if a ledger
// mutation has since made it stale; staleness is never surfaced as an error.
type FetchAggregateUseCase struct {
	aggregateRepo adapter.AggregateRepository
}

// NewFetchAggregateUseCase creates a new FetchAggregateUseCase instance.
func NewFetchAggregateUseCase(aggregateRepo adapter.AggregateRepository) *FetchAggregateUseCase {
	return &FetchAggregateUseCase{
		aggregateRepo: aggregateRepo,
	}
}

// Execute retrieves the aggregate for a user, lazily creating a zeroed one.
func (uc *FetchAggregateUseCase) Execute(ctx context.Context, input FetchAggregateInput) (*FetchAggregateOutput, error) {
	aggregate, found, err := uc.aggregateRepo.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get aggregate: %w", err)
	}

	if !found {
		aggregate = entity.NewZeroAggregate(input.UserID)
		if err := uc.aggregateRepo.Upsert(ctx, aggregate); err != nil {
			return nil, fmt.Errorf("failed to create aggregate: %w", err)
		}
	}

	return &FetchAggregateOutput{Aggregate: aggregate}, nil
}
