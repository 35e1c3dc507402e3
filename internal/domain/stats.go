package domain

import "github.com/shopspring/decimal"

// CategoryStat is the per-category expense total for a period.
// Derived on every query, never persisted. Total is an absolute value.
type CategoryStat struct {
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
}

// MonthlyBar is the income/expense pair for one calendar month.
// Both values are non-negative magnitudes.
type MonthlyBar struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
