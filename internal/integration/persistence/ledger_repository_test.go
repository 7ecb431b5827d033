package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

func mustCreateEntry(t *testing.T, repo adapter.LedgerRepository, entry *entity.LedgerEntry) *entity.LedgerEntry {
	t.Helper()
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	return entry
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestLedgerRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	userID := uuid.New()

	created := mustCreateEntry(t, repo, entity.NewLedgerEntry(
		userID, entity.EntryKindIncome, "Salary", decimal.NewFromInt(2500), day(2025, 3, 1), "Work",
	))

	t.Run("finds an owned entry by id", func(t *testing.T) {
		found, err := repo.FindByIDAndUser(context.Background(), created.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Label != "Salary" {
			t.Errorf("expected label Salary, got %s", found.Label)
		}
		if !found.Amount.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected amount 2500, got %s", found.Amount)
		}
	})

	t.Run("another user cannot see the entry", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(context.Background(), created.ID, uuid.New())
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(context.Background(), uuid.New(), userID)
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

func TestLedgerRepository_FindByUserAndKind(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	userID := uuid.New()

	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindIncome, "Old salary", decimal.NewFromInt(100), day(2025, 1, 10), ""))
	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindIncome, "New salary", decimal.NewFromInt(200), day(2025, 3, 10), ""))
	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Rent", decimal.NewFromInt(50), day(2025, 2, 1), ""))

	t.Run("filters by kind and orders newest first", func(t *testing.T) {
		entries, err := repo.FindByUserAndKind(context.Background(), userID, entity.EntryKindIncome)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 incomes, got %d", len(entries))
		}
		if entries[0].Label != "New salary" || entries[1].Label != "Old salary" {
			t.Errorf("expected newest-first order, got %s then %s", entries[0].Label, entries[1].Label)
		}
	})

	t.Run("recent list honors the limit", func(t *testing.T) {
		entries, err := repo.FindRecentByUserAndKind(context.Background(), userID, entity.EntryKindIncome, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Label != "New salary" {
			t.Errorf("expected most recent entry, got %s", entries[0].Label)
		}
	})
}

func TestLedgerRepository_FindByUserKindAndRange(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	userID := uuid.New()

	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Before", decimal.NewFromInt(1), day(2025, 2, 28), ""))
	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Start day", decimal.NewFromInt(2), day(2025, 3, 1), ""))
	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "End day", decimal.NewFromInt(3), day(2025, 3, 31), ""))
	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "After", decimal.NewFromInt(4), day(2025, 4, 1), ""))

	entries, err := repo.FindByUserKindAndRange(context.Background(), userID, entity.EntryKindExpense, day(2025, 3, 1), day(2025, 3, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both boundary days are included, oldest first.
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in range, got %d", len(entries))
	}
	if entries[0].Label != "Start day" || entries[1].Label != "End day" {
		t.Errorf("expected oldest-first boundary entries, got %s then %s", entries[0].Label, entries[1].Label)
	}
}

func TestLedgerRepository_Sums(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	userID := uuid.New()

	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Groceries", decimal.NewFromFloat(10.25), day(2025, 3, 1), "Food"))
	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Restaurant", decimal.NewFromFloat(5.75), day(2025, 3, 2), "Food"))
	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Rent", decimal.NewFromInt(100), day(2025, 3, 3), "Housing"))
	mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindIncome, "Salary", decimal.NewFromInt(500), day(2025, 3, 4), "Work"))

	t.Run("sums one kind across categories", func(t *testing.T) {
		total, err := repo.SumByUserAndKind(context.Background(), userID, entity.EntryKindExpense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.NewFromInt(116)) {
			t.Errorf("expected total 116, got %s", total)
		}
	})

	t.Run("sums one kind within a category", func(t *testing.T) {
		total, err := repo.SumByUserKindAndCategory(context.Background(), userID, entity.EntryKindExpense, "Food")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.NewFromInt(16)) {
			t.Errorf("expected total 16, got %s", total)
		}
	})

	t.Run("empty ledger sums to zero", func(t *testing.T) {
		total, err := repo.SumByUserAndKind(context.Background(), uuid.New(), entity.EntryKindExpense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("expected zero total, got %s", total)
		}
	})

	t.Run("groups totals by category largest first", func(t *testing.T) {
		totals, err := repo.TotalsByCategory(context.Background(), userID, entity.EntryKindExpense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(totals))
		}
		if totals[0].Category != "Housing" || !totals[0].Total.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected Housing 100 first, got %s %s", totals[0].Category, totals[0].Total)
		}
		if totals[1].Category != "Food" || !totals[1].Total.Equal(decimal.NewFromInt(16)) {
			t.Errorf("expected Food 16 second, got %s %s", totals[1].Category, totals[1].Total)
		}
	})
}

func TestLedgerRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	userID := uuid.New()

	created := mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Rent", decimal.NewFromInt(100), day(2025, 3, 1), "Housing"))

	t.Run("updates mutable fields", func(t *testing.T) {
		created.Label = "Rent March"
		created.Amount = decimal.NewFromInt(110)
		if err := repo.Update(context.Background(), created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByIDAndUser(context.Background(), created.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Label != "Rent March" {
			t.Errorf("expected updated label, got %s", found.Label)
		}
		if !found.Amount.Equal(decimal.NewFromInt(110)) {
			t.Errorf("expected updated amount 110, got %s", found.Amount)
		}
	})

	t.Run("updating a missing entry reports not found", func(t *testing.T) {
		ghost := entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Ghost", decimal.NewFromInt(1), day(2025, 3, 1), "")
		err := repo.Update(context.Background(), ghost)
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

func TestLedgerRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	userID := uuid.New()

	created := mustCreateEntry(t, repo, entity.NewLedgerEntry(userID, entity.EntryKindExpense, "Rent", decimal.NewFromInt(100), day(2025, 3, 1), "Housing"))

	t.Run("soft-deleted entries disappear from reads and sums", func(t *testing.T) {
		if err := repo.Delete(context.Background(), created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByIDAndUser(context.Background(), created.ID, userID); !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound after delete, got %v", err)
		}

		total, err := repo.SumByUserAndKind(context.Background(), userID, entity.EntryKindExpense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("expected zero total after delete, got %s", total)
		}
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		err := repo.Delete(context.Background(), created.ID)
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}
