package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/chart"
	"github.com/javohir/hamyon/internal/domain"
)

// Period names an analytics range anchored at the current moment.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// PeriodStart resolves a named period to its first instant: Monday of the
// current week, the first of the current month, or the first of the month
// two months back. Unknown values resolve to month.
func (l *Ledger) PeriodStart(p Period) time.Time {
	now := l.clock.Now()

	switch p {
	case PeriodWeek:
		offset := int(now.Weekday()) - 1
		if offset < 0 {
			offset = 6 // Sunday closes the week
		}
		day := now.AddDate(0, 0, -offset)
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	case PeriodQuarter:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -2, 0)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// IncomeInPeriod sums positive amounts dated within [from, to].
// Nil bounds are unbounded.
func (l *Ledger) IncomeInPeriod(from, to *time.Time) decimal.Decimal {
	return l.periodSum(from, to, func(tx *domain.Transaction) bool { return tx.IsIncome() })
}

// ExpenseInPeriod sums negative amounts dated within [from, to] and
// reports the result as a non-negative magnitude.
func (l *Ledger) ExpenseInPeriod(from, to *time.Time) decimal.Decimal {
	return l.periodSum(from, to, func(tx *domain.Transaction) bool { return tx.IsExpense() }).Abs()
}

// CountInPeriod counts transactions dated within [from, to], any sign.
func (l *Ledger) CountInPeriod(from, to *time.Time) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for i := range l.transactions {
		if l.transactions[i].InPeriod(from, to) {
			count++
		}
	}
	return count
}

// CategoryStats groups expenses in [from, to] by category, summing absolute
// amounts, sorted by total descending. Display fields come from the live
// category list; an unknown or missing category resolves to the catch-all
// bucket. An empty period yields an empty list.
func (l *Ledger) CategoryStats(from, to *time.Time) []domain.CategoryStat {
	l.mu.RLock()
	defer l.mu.RUnlock()

	buckets := map[int64]*domain.CategoryStat{}
	for i := range l.transactions {
		tx := &l.transactions[i]
		if !tx.IsExpense() || !tx.InPeriod(from, to) {
			continue
		}

		catID := tx.CategoryID
		if catID == 0 {
			catID = domain.OtherCategoryID
		}

		bucket, exists := buckets[catID]
		if !exists {
			stat := domain.CategoryStat{
				CategoryID: catID,
				Name:       domain.FallbackName,
				Icon:       domain.FallbackIcon,
				Color:      domain.FallbackColor,
				Total:      decimal.Zero,
			}
			if cat := l.findCategory(catID); cat != nil {
				stat.Name = cat.Name
				stat.Icon = cat.Icon
				stat.Color = cat.Color
			}
			bucket = &stat
			buckets[catID] = bucket
		}

		bucket.Total = bucket.Total.Add(tx.Amount.Abs())
	}

	stats := make([]domain.CategoryStat, 0, len(buckets))
	for _, b := range buckets {
		stats = append(stats, *b)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total.GreaterThan(stats[j].Total)
	})
	return stats
}

// AvgDailyExpense is the current-month expense total divided by the number
// of days elapsed so far this month.
func (l *Ledger) AvgDailyExpense() decimal.Decimal {
	now := l.clock.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	days := now.Day()
	if days < 1 {
		days = 1
	}

	return l.ExpenseInPeriod(&start, nil).Div(decimal.NewFromInt(int64(days)))
}

// InPocketPerDay is the balance spread over the days left in the current
// month. Not a forecast: a non-positive balance yields zero.
func (l *Ledger) InPocketPerDay() decimal.Decimal {
	balance := l.Balance()
	if !balance.IsPositive() {
		return decimal.Zero
	}

	now := l.clock.Now()
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	remaining := lastDay - now.Day()
	if remaining < 1 {
		remaining = 1
	}

	return balance.Div(decimal.NewFromInt(int64(remaining)))
}

// MonthlyBars aggregates income and expense for the 6-month window ending
// with the current month, oldest first.
func (l *Ledger) MonthlyBars() []domain.MonthlyBar {
	spans := chart.MonthWindow(l.clock.Now(), MonthWindowSize)

	bars := make([]domain.MonthlyBar, 0, len(spans))
	for _, span := range spans {
		from, to := span.From, span.To
		bars = append(bars, domain.MonthlyBar{
			Label:   span.Label,
			Income:  l.IncomeInPeriod(&from, &to),
			Expense: l.ExpenseInPeriod(&from, &to),
		})
	}
	return bars
}

// periodSum adds up amounts matching the predicate within [from, to].
func (l *Ledger) periodSum(from, to *time.Time, match func(*domain.Transaction) bool) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sum := decimal.Zero
	for i := range l.transactions {
		tx := &l.transactions[i]
		if tx.InPeriod(from, to) && match(tx) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}
