package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/usecase"
)

// AddTransactionRequest represents a request to record a transaction.
// Amount carries its final sign; the webview negates expenses before posting.
type AddTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  int64           `json:"category_id"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AddTransactionRequest) ToUseCaseInput() usecase.AddTransactionInput {
	return usecase.AddTransactionInput{
		Amount:      r.Amount,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Date:        r.Date,
	}
}

// UpdateSettingsRequest represents a settings change. Both fields are
// optional; absent fields leave the current value untouched.
type UpdateSettingsRequest struct {
	Currency     *string `json:"currency,omitempty"`
	WeeklyDigest *bool   `json:"weeklyDigest,omitempty"`
}

// ExportRequest asks the bot to produce a spreadsheet export.
type ExportRequest struct {
	Format string `json:"format"`
}
