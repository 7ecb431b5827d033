package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

func TestReportRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	userID := uuid.New()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	older := entity.NewReport(userID, entity.ReportTypeSummary, start, end)
	older.GeneratedAt = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	if err := repo.Append(context.Background(), older); err != nil {
		t.Fatalf("failed to append report: %v", err)
	}

	newer := entity.NewReport(userID, entity.ReportTypeExpense, start, end)
	newer.GeneratedAt = time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	if err := repo.Append(context.Background(), newer); err != nil {
		t.Fatalf("failed to append report: %v", err)
	}

	t.Run("lists audit records newest first", func(t *testing.T) {
		reports, err := repo.FindByUser(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 2 {
			t.Fatalf("expected 2 reports, got %d", len(reports))
		}
		if reports[0].ReportType != entity.ReportTypeExpense {
			t.Errorf("expected newest report first, got %s", reports[0].ReportType)
		}
		if reports[1].ReportType != entity.ReportTypeSummary {
			t.Errorf("expected oldest report last, got %s", reports[1].ReportType)
		}
	})

	t.Run("records are scoped to their user", func(t *testing.T) {
		reports, err := repo.FindByUser(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 0 {
			t.Errorf("expected no reports for another user, got %d", len(reports))
		}
	})
}
