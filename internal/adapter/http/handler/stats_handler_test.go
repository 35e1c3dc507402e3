package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/adapter/http/dto"
	"github.com/javohir/hamyon/internal/domain"
	"github.com/javohir/hamyon/internal/usecase"
)

type statsServiceStub struct {
	balance   decimal.Decimal
	inPocket  decimal.Decimal
	settings  domain.Settings
	income    decimal.Decimal
	expense   decimal.Decimal
	count     int
	avgDaily  decimal.Decimal
	stats     []domain.CategoryStat
	bars      []domain.MonthlyBar
	gotPeriod usecase.Period
}

func (s *statsServiceStub) Balance() decimal.Decimal        { return s.balance }
func (s *statsServiceStub) InPocketPerDay() decimal.Decimal { return s.inPocket }
func (s *statsServiceStub) Settings() domain.Settings       { return s.settings }

func (s *statsServiceStub) PeriodStart(p usecase.Period) time.Time {
	s.gotPeriod = p
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func (s *statsServiceStub) IncomeInPeriod(from, to *time.Time) decimal.Decimal  { return s.income }
func (s *statsServiceStub) ExpenseInPeriod(from, to *time.Time) decimal.Decimal { return s.expense }
func (s *statsServiceStub) CountInPeriod(from, to *time.Time) int               { return s.count }
func (s *statsServiceStub) AvgDailyExpense() decimal.Decimal                    { return s.avgDaily }

func (s *statsServiceStub) CategoryStats(from, to *time.Time) []domain.CategoryStat { return s.stats }
func (s *statsServiceStub) MonthlyBars() []domain.MonthlyBar                        { return s.bars }

func TestStatsHandler_Balance(t *testing.T) {
	h := NewStatsHandler(&statsServiceStub{
		balance:  decimal.NewFromInt(150000),
		inPocket: decimal.NewFromInt(10000),
		settings: domain.DefaultSettings(),
	})

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	rec := httptest.NewRecorder()

	h.Balance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Balance.Equal(decimal.NewFromInt(150000)) || resp.Currency != "UZS" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestStatsHandler_Summary(t *testing.T) {
	stub := &statsServiceStub{
		income:   decimal.NewFromInt(200000),
		expense:  decimal.NewFromInt(50000),
		avgDaily: decimal.NewFromInt(2000),
		count:    3,
	}
	h := NewStatsHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/stats/summary?period=week", nil)
	rec := httptest.NewRecorder()

	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotPeriod != usecase.PeriodWeek {
		t.Fatalf("expected week period, got %q", stub.gotPeriod)
	}

	var resp dto.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Period != "week" || !resp.Expense.Equal(decimal.NewFromInt(50000)) || resp.Count != 3 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestStatsHandler_Summary_UnknownPeriodDefaultsToMonth(t *testing.T) {
	stub := &statsServiceStub{}
	h := NewStatsHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/stats/summary?period=year", nil)
	rec := httptest.NewRecorder()

	h.Summary(rec, req)

	if stub.gotPeriod != usecase.PeriodMonth {
		t.Fatalf("expected month fallback, got %q", stub.gotPeriod)
	}
}

func TestStatsHandler_Categories(t *testing.T) {
	h := NewStatsHandler(&statsServiceStub{
		stats: []domain.CategoryStat{
			{CategoryID: 1, Name: "Food", Icon: "🍔", Color: "#FF9500", Total: decimal.NewFromInt(50000)},
			{CategoryID: 2, Name: "Transport", Icon: "🚕", Color: "#FF3B30", Total: decimal.NewFromInt(25000)},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/stats/categories", nil)
	rec := httptest.NewRecorder()

	h.Categories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.CategoryStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Stats) != 2 || resp.Donut.Empty {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(resp.Donut.Segments) != 2 || len(resp.Donut.Legend) != 2 {
		t.Fatalf("donut layout not aligned with stats: %+v", resp.Donut)
	}
}

func TestStatsHandler_Categories_Empty(t *testing.T) {
	h := NewStatsHandler(&statsServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/stats/categories", nil)
	rec := httptest.NewRecorder()

	h.Categories(rec, req)

	var resp dto.CategoryStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Donut.Empty {
		t.Fatalf("expected empty donut sentinel, got %+v", resp.Donut)
	}
}

func TestStatsHandler_Monthly(t *testing.T) {
	bars := []domain.MonthlyBar{
		{Label: "Jan", Income: decimal.NewFromInt(300000), Expense: decimal.NewFromInt(40000)},
		{Label: "Feb", Income: decimal.Zero, Expense: decimal.Zero},
	}
	h := NewStatsHandler(&statsServiceStub{bars: bars})

	req := httptest.NewRequest(http.MethodGet, "/stats/monthly", nil)
	rec := httptest.NewRecorder()

	h.Monthly(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.MonthlyStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Bars) != 2 || resp.Layout.Empty {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Layout.Width != barTrackWidth || resp.Layout.Height != barTrackHeight {
		t.Fatalf("unexpected track size %vx%v", resp.Layout.Width, resp.Layout.Height)
	}
}
