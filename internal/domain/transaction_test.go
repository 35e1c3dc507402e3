package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFilterMatches(t *testing.T) {
	income := &Transaction{Amount: decimal.NewFromInt(100)}
	expense := &Transaction{Amount: decimal.NewFromInt(-100)}
	zero := &Transaction{Amount: decimal.Zero}

	tests := []struct {
		name   string
		filter Filter
		tx     *Transaction
		want   bool
	}{
		{"income filter passes income", FilterIncome, income, true},
		{"income filter blocks expense", FilterIncome, expense, false},
		{"income filter blocks zero", FilterIncome, zero, false},
		{"expense filter passes expense", FilterExpense, expense, true},
		{"expense filter blocks income", FilterExpense, income, false},
		{"expense filter blocks zero", FilterExpense, zero, false},
		{"all passes income", FilterAll, income, true},
		{"all passes expense", FilterAll, expense, true},
		{"all passes zero", FilterAll, zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.tx); got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransactionInPeriod(t *testing.T) {
	date := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tx := &Transaction{Date: date}

	before := date.AddDate(0, 0, -1)
	after := date.AddDate(0, 0, 1)

	if !tx.InPeriod(nil, nil) {
		t.Fatal("unbounded period must match")
	}
	if !tx.InPeriod(&before, &after) {
		t.Fatal("expected date inside bounds to match")
	}
	if !tx.InPeriod(&date, &date) {
		t.Fatal("bounds are inclusive")
	}
	if tx.InPeriod(&after, nil) {
		t.Fatal("date before lower bound must not match")
	}
	if tx.InPeriod(nil, &before) {
		t.Fatal("date after upper bound must not match")
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 10 {
		t.Fatalf("expected 10 default categories, got %d", len(cats))
	}

	seen := map[int64]bool{}
	for _, c := range cats {
		if seen[c.ID] {
			t.Fatalf("duplicate category id %d", c.ID)
		}
		seen[c.ID] = true
	}

	other := cats[len(cats)-1]
	if other.ID != OtherCategoryID || other.Type != CategoryBoth {
		t.Fatalf("expected catch-all category with id %d and type both, got %+v", OtherCategoryID, other)
	}
}

func TestCategoryAppliesTo(t *testing.T) {
	expense := &Category{Type: CategoryExpense}
	both := &Category{Type: CategoryBoth}

	if !expense.AppliesTo(CategoryExpense) || expense.AppliesTo(CategoryIncome) {
		t.Fatal("expense category must apply to expense only")
	}
	if !both.AppliesTo(CategoryExpense) || !both.AppliesTo(CategoryIncome) {
		t.Fatal("both category must apply to either type")
	}
}
