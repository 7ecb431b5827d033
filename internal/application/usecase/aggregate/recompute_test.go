package aggregate

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// stubLedgerRepo answers kind sums from fixed values. Unused methods panic
// via the embedded nil interface.
type stubLedgerRepo struct {
	adapter.LedgerRepository
	incomeSum  decimal.Decimal
	expenseSum decimal.Decimal
}

func (s *stubLedgerRepo) SumByUserAndKind(_ context.Context, _ uuid.UUID, kind entity.EntryKind) (decimal.Decimal, error) {
	if kind == entity.EntryKindIncome {
		return s.incomeSum, nil
	}
	return s.expenseSum, nil
}

// memAggregateRepo keeps aggregates in a map keyed by user.
type memAggregateRepo struct {
	rows    map[uuid.UUID]*entity.Aggregate
	upserts int
}

func newMemAggregateRepo() *memAggregateRepo {
	return &memAggregateRepo{rows: make(map[uuid.UUID]*entity.Aggregate)}
}

func (m *memAggregateRepo) Get(_ context.Context, userID uuid.UUID) (*entity.Aggregate, bool, error) {
	row, ok := m.rows[userID]
	if !ok {
		return nil, false, nil
	}
	return row, true, nil
}

func (m *memAggregateRepo) Upsert(_ context.Context, aggregate *entity.Aggregate) error {
	m.upserts++
	m.rows[aggregate.UserID] = aggregate
	return nil
}

func TestRecomputeAggregateUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("sums both kinds and derives net balance", func(t *testing.T) {
		ledgerRepo := &stubLedgerRepo{
			incomeSum:  decimal.NewFromInt(500),
			expenseSum: decimal.NewFromInt(180),
		}
		aggregateRepo := newMemAggregateRepo()
		uc := NewRecomputeAggregateUseCase(ledgerRepo, aggregateRepo)

		output, err := uc.Execute(context.Background(), RecomputeAggregateInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Aggregate.TotalIncome.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected total income 500, got %s", output.Aggregate.TotalIncome)
		}
		if !output.Aggregate.TotalExpense.Equal(decimal.NewFromInt(180)) {
			t.Errorf("expected total expense 180, got %s", output.Aggregate.TotalExpense)
		}
		if !output.Aggregate.NetBalance.Equal(decimal.NewFromInt(320)) {
			t.Errorf("expected net balance 320, got %s", output.Aggregate.NetBalance)
		}

		stored, found, _ := aggregateRepo.Get(context.Background(), userID)
		if !found {
			t.Fatal("expected aggregate to be persisted")
		}
		if !stored.NetBalance.Equal(decimal.NewFromInt(320)) {
			t.Errorf("expected persisted net balance 320, got %s", stored.NetBalance)
		}
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		ledgerRepo := &stubLedgerRepo{
			incomeSum:  decimal.NewFromInt(100),
			expenseSum: decimal.NewFromInt(40),
		}
		aggregateRepo := newMemAggregateRepo()
		uc := NewRecomputeAggregateUseCase(ledgerRepo, aggregateRepo)

		first, err := uc.Execute(context.Background(), RecomputeAggregateInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), RecomputeAggregateInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !first.Aggregate.NetBalance.Equal(second.Aggregate.NetBalance) {
			t.Errorf("expected identical balances, got %s and %s", first.Aggregate.NetBalance, second.Aggregate.NetBalance)
		}
		if aggregateRepo.upserts != 2 {
			t.Errorf("expected 2 upserts, got %d", aggregateRepo.upserts)
		}
	})

	t.Run("empty ledger yields a zero aggregate", func(t *testing.T) {
		ledgerRepo := &stubLedgerRepo{
			incomeSum:  decimal.Zero,
			expenseSum: decimal.Zero,
		}
		aggregateRepo := newMemAggregateRepo()
		uc := NewRecomputeAggregateUseCase(ledgerRepo, aggregateRepo)

		output, err := uc.Execute(context.Background(), RecomputeAggregateInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Aggregate.TotalIncome.IsZero() || !output.Aggregate.TotalExpense.IsZero() || !output.Aggregate.NetBalance.IsZero() {
			t.Error("expected all aggregate totals to be zero")
		}
	})
}

func TestFetchAggregateUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("lazily creates a zero aggregate for a new user", func(t *testing.T) {
		aggregateRepo := newMemAggregateRepo()
		uc := NewFetchAggregateUseCase(aggregateRepo)

		output, err := uc.Execute(context.Background(), FetchAggregateInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Aggregate.UserID != userID {
			t.Errorf("expected aggregate for user %s, got %s", userID, output.Aggregate.UserID)
		}
		if !output.Aggregate.NetBalance.IsZero() {
			t.Errorf("expected zero net balance, got %s", output.Aggregate.NetBalance)
		}
		if aggregateRepo.upserts != 1 {
			t.Errorf("expected zero row to be persisted, got %d upserts", aggregateRepo.upserts)
		}
	})

	t.Run("returns the stored aggregate without writing", func(t *testing.T) {
		aggregateRepo := newMemAggregateRepo()
		stored := entity.NewZeroAggregate(userID)
		stored.TotalIncome = decimal.NewFromInt(700)
		stored.TotalExpense = decimal.NewFromInt(300)
		stored.NetBalance = decimal.NewFromInt(400)
		aggregateRepo.rows[userID] = stored

		uc := NewFetchAggregateUseCase(aggregateRepo)

		output, err := uc.Execute(context.Background(), FetchAggregateInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Aggregate.NetBalance.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected net balance 400, got %s", output.Aggregate.NetBalance)
		}
		if aggregateRepo.upserts != 0 {
			t.Errorf("expected no upserts on a warm read, got %d", aggregateRepo.upserts)
		}
	})
}
