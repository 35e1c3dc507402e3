package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceWebApp tags transactions recorded through the webview.
const SourceWebApp = "webapp"

// Transaction represents a single recorded income or expense.
// The sign of Amount encodes direction: positive is income, negative is
// expense. CategoryName and CategoryIcon are snapshots copied from the
// category at creation time; they are never updated afterwards, so history
// keeps displaying the category as it was when the entry was made.
//
// JSON field names match the payloads the bot backend already stores.
type Transaction struct {
	ID           int64           `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"categoryName"`
	CategoryIcon string          `json:"categoryIcon"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Source       string          `json:"source"`
}

// IsIncome reports whether the transaction adds to the balance.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction subtracts from the balance.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// InPeriod reports whether the transaction date falls in [from, to].
// A nil bound is unbounded on that side.
func (t *Transaction) InPeriod(from, to *time.Time) bool {
	if from != nil && t.Date.Before(*from) {
		return false
	}
	if to != nil && t.Date.After(*to) {
		return false
	}
	return true
}

// Filter selects transactions by direction.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// Matches reports whether the transaction passes the filter.
// A zero amount passes only FilterAll.
func (f Filter) Matches(t *Transaction) bool {
	switch f {
	case FilterIncome:
		return t.IsIncome()
	case FilterExpense:
		return t.IsExpense()
	default:
		return true
	}
}
