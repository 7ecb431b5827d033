// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ReportRepository defines the interface for report audit record persistence.
type ReportRepository interface {
	// Append stores a report audit record.
	Append(ctx context.Context, report *entity.Report) error

	// FindByUser retrieves all audit records for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error)
}
