// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// WindowKind represents the calendar window used for trend buckets.
type WindowKind string

const (
	WindowKindDaily  WindowKind = "daily"
	WindowKindWeekly WindowKind = "weekly"
)

// Default window counts for the trend chart.
const (
	DefaultDailyWindowCount  = 30
	DefaultWeeklyWindowCount = 5
)

// Bucket is one calendar window with the summed entry amounts per kind.
type Bucket struct {
	Label   string
	Start   time.Time
	End     time.Time // exclusive
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Bucketize groups ledger entries into exactly count windows ending at
// today, oldest first. A daily window is one calendar day; a weekly window
// is a contiguous 7-day span anchored at "today minus N weeks". Each entry
// lands in at most one bucket: its date must fall within the half-open
// interval [Start, End), so a boundary-dated entry belongs to the later
// bucket only.
func Bucketize(entries []*entity.LedgerEntry, kind WindowKind, count int, today time.Time) []Bucket {
	day := truncateToDay(today)

	span := 1
	if kind == WindowKindWeekly {
		span = 7
	}

	buckets := make([]Bucket, count)
	for i := range buckets {
		start := day.AddDate(0, 0, -span*(count-1-i))
		buckets[i] = Bucket{
			Label:   start.Format("02 Jan"),
			Start:   start,
			End:     start.AddDate(0, 0, span),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, entry := range entries {
		for i := range buckets {
			if entry.Date.Before(buckets[i].Start) || !entry.Date.Before(buckets[i].End) {
				continue
			}
			if entry.Kind == entity.EntryKindIncome {
				buckets[i].Income = buckets[i].Income.Add(entry.Amount)
			} else {
				buckets[i].Expense = buckets[i].Expense.Add(entry.Amount)
			}
			break
		}
	}

	return buckets
}

// PercentChange computes (current-previous)/previous*100. When previous is
// zero there is no meaningful baseline: the second return value is false and
// callers must render "N/A" instead of a percentage. The sentinel is
// distinct from a legitimate 0% change.
func PercentChange(current, previous decimal.Decimal) (decimal.Decimal, bool) {
	if previous.IsZero() {
		return decimal.Zero, false
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)), true
}

// truncateToDay strips the time-of-day component in the value's location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
