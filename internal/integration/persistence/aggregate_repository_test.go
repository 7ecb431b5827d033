package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

func TestAggregateRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAggregateRepository(db)
	userID := uuid.New()

	t.Run("missing row reports found=false", func(t *testing.T) {
		aggregate, found, err := repo.Get(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected found=false for a new user")
		}
		if aggregate != nil {
			t.Error("expected nil aggregate when not found")
		}
	})

	t.Run("upsert inserts the first row", func(t *testing.T) {
		aggregate := entity.NewZeroAggregate(userID)
		aggregate.TotalIncome = decimal.NewFromInt(300)
		aggregate.TotalExpense = decimal.NewFromInt(100)
		aggregate.NetBalance = decimal.NewFromInt(200)

		if err := repo.Upsert(context.Background(), aggregate); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, found, err := repo.Get(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected row after upsert")
		}
		if !stored.NetBalance.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected net balance 200, got %s", stored.NetBalance)
		}
	})

	t.Run("upsert replaces the existing row", func(t *testing.T) {
		aggregate := entity.NewZeroAggregate(userID)
		aggregate.TotalIncome = decimal.NewFromInt(500)
		aggregate.TotalExpense = decimal.NewFromInt(50)
		aggregate.NetBalance = decimal.NewFromInt(450)

		if err := repo.Upsert(context.Background(), aggregate); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, found, err := repo.Get(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected row after second upsert")
		}
		if !stored.TotalIncome.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected total income 500, got %s", stored.TotalIncome)
		}
		if !stored.NetBalance.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected net balance 450, got %s", stored.NetBalance)
		}

		var count int64
		db.Table("aggregates").Where("user_id = ?", userID).Count(&count)
		if count != 1 {
			t.Errorf("expected a single row per user, got %d", count)
		}
	})
}
