// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// AggregateRepository defines the interface for aggregate persistence operations.
// The aggregate row is keyed by user; concurrent upserts race and the last
// write wins, which callers accept as eventual consistency.
type AggregateRepository interface {
	// Get retrieves the stored aggregate for a user. Returns found=false when
	// no row exists yet; lazy creation is the caller's concern.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Aggregate, bool, error)

	// Upsert inserts or replaces the aggregate row for a user.
	Upsert(ctx context.Context, aggregate *entity.Aggregate) error
}
