package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/chart"
	"github.com/javohir/hamyon/internal/domain"
)

// TransactionResponse represents a transaction in API responses. Field names
// match what the bot backend and webview already exchange.
type TransactionResponse struct {
	ID           int64           `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"categoryName"`
	CategoryIcon string          `json:"categoryIcon"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Source       string          `json:"source"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:           t.ID,
		Amount:       t.Amount,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		CategoryIcon: t.CategoryIcon,
		Description:  t.Description,
		Date:         t.Date,
		Source:       t.Source,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i := range transactions {
		result[i] = TransactionFromDomain(&transactions[i])
	}
	return result
}

// ListTransactionsResponse wraps a transaction list.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int                    `json:"total"`
}

// BalanceResponse is the wallet header: balance plus the daily allowance.
type BalanceResponse struct {
	Balance        decimal.Decimal `json:"balance"`
	InPocketPerDay decimal.Decimal `json:"in_pocket_per_day"`
	Currency       string          `json:"currency"`
}

// SummaryResponse aggregates one analytics period.
type SummaryResponse struct {
	Period   string          `json:"period"`
	From     time.Time       `json:"from"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	AvgDaily decimal.Decimal `json:"avg_daily"`
	Count    int             `json:"count"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = &CategoryResponse{
			ID:    c.ID,
			Name:  c.Name,
			Icon:  c.Icon,
			Type:  string(c.Type),
			Color: c.Color,
		}
	}
	return result
}

// CategoryStatsResponse pairs the per-category totals with the ready-to-draw
// donut layout so the webview renders without recomputing geometry.
type CategoryStatsResponse struct {
	Period string                `json:"period"`
	Stats  []domain.CategoryStat `json:"stats"`
	Donut  chart.DonutLayout     `json:"donut"`
}

// MonthlyStatsResponse pairs the 6-month aggregates with the bar layout.
type MonthlyStatsResponse struct {
	Bars   []domain.MonthlyBar `json:"bars"`
	Layout chart.BarLayout     `json:"layout"`
}

// SettingsResponse represents the user settings.
type SettingsResponse struct {
	Currency     string `json:"currency"`
	WeeklyDigest bool   `json:"weeklyDigest"`
}

// SettingsFromDomain converts domain settings to a response.
func SettingsFromDomain(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		Currency:     string(s.Currency),
		WeeklyDigest: s.WeeklyDigest,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
