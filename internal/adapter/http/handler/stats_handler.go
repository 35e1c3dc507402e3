package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/adapter/http/dto"
	"github.com/javohir/hamyon/internal/chart"
	"github.com/javohir/hamyon/internal/domain"
	"github.com/javohir/hamyon/internal/usecase"
)

// Bar chart track dimensions matching the webview canvas.
const (
	barTrackWidth  = 568
	barTrackHeight = 192
)

// StatsService defines the behavior needed by StatsHandler.
type StatsService interface {
	Balance() decimal.Decimal
	InPocketPerDay() decimal.Decimal
	Settings() domain.Settings
	PeriodStart(p usecase.Period) time.Time
	IncomeInPeriod(from, to *time.Time) decimal.Decimal
	ExpenseInPeriod(from, to *time.Time) decimal.Decimal
	CountInPeriod(from, to *time.Time) int
	AvgDailyExpense() decimal.Decimal
	CategoryStats(from, to *time.Time) []domain.CategoryStat
	MonthlyBars() []domain.MonthlyBar
}

// StatsHandler handles balance and analytics HTTP requests.
type StatsHandler struct {
	ledger StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(ledger StatsService) *StatsHandler {
	return &StatsHandler{ledger: ledger}
}

// Balance returns the wallet header figures.
func (h *StatsHandler) Balance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		Balance:        h.ledger.Balance(),
		InPocketPerDay: h.ledger.InPocketPerDay(),
		Currency:       string(h.ledger.Settings().Currency),
	})
}

// Summary returns aggregate figures for the requested period.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	period := periodFromQuery(r)
	from := h.ledger.PeriodStart(period)

	writeJSON(w, http.StatusOK, dto.SummaryResponse{
		Period:   string(period),
		From:     from,
		Income:   h.ledger.IncomeInPeriod(&from, nil),
		Expense:  h.ledger.ExpenseInPeriod(&from, nil),
		AvgDaily: h.ledger.AvgDailyExpense(),
		Count:    h.ledger.CountInPeriod(&from, nil),
	})
}

// Categories returns per-category expense totals plus the donut layout.
func (h *StatsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	period := periodFromQuery(r)
	from := h.ledger.PeriodStart(period)
	stats := h.ledger.CategoryStats(&from, nil)

	writeJSON(w, http.StatusOK, dto.CategoryStatsResponse{
		Period: string(period),
		Stats:  stats,
		Donut:  chart.Donut(stats),
	})
}

// Monthly returns the 6-month income/expense aggregates and the bar layout.
func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	bars := h.ledger.MonthlyBars()

	writeJSON(w, http.StatusOK, dto.MonthlyStatsResponse{
		Bars:   bars,
		Layout: chart.Bars(bars, barTrackWidth, barTrackHeight),
	})
}

// periodFromQuery reads the period parameter. Unknown or absent values
// resolve to month, the webview default.
func periodFromQuery(r *http.Request) usecase.Period {
	switch p := usecase.Period(r.URL.Query().Get("period")); p {
	case usecase.PeriodWeek, usecase.PeriodMonth, usecase.PeriodQuarter:
		return p
	default:
		return usecase.PeriodMonth
	}
}
