package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/adapter/http/handler"
	"github.com/javohir/hamyon/internal/adapter/http/middleware"
	"github.com/javohir/hamyon/internal/domain"
	"github.com/javohir/hamyon/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_AssignsRequestID(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected a request id header on the response")
	}
}

func TestNewRouter_EchoesProvidedRequestID(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-id-1")
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "client-id-1" {
		t.Fatalf("expected the client id to be echoed, got %q", got)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"GET /api/v1/transactions/",
		"POST /api/v1/transactions/",
		"DELETE /api/v1/transactions/{id}",
		"GET /api/v1/balance",
		"GET /api/v1/stats/summary",
		"GET /api/v1/stats/categories",
		"GET /api/v1/stats/monthly",
		"GET /api/v1/categories",
		"GET /api/v1/settings/",
		"PUT /api/v1/settings/",
		"POST /api/v1/export",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig() RouterConfig {
	ledger := &stubLedgerService{}

	return RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(ledger),
		StatsHandler:       handler.NewStatsHandler(ledger),
		CategoryHandler:    handler.NewCategoryHandler(ledger),
		SettingsHandler:    handler.NewSettingsHandler(ledger),
		HealthHandler:      handler.NewHealthHandler(nil),
		Logger:             zerolog.Nop(),
	}
}

// stubLedgerService satisfies every handler service interface at once.
type stubLedgerService struct{}

func (stubLedgerService) AddTransaction(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: 1}, nil
}

func (stubLedgerService) DeleteTransaction(ctx context.Context, id int64) {}

func (stubLedgerService) Filtered(filter domain.Filter, search string) []domain.Transaction {
	return nil
}

func (stubLedgerService) RequestExport(ctx context.Context, format string) {}

func (stubLedgerService) Balance() decimal.Decimal        { return decimal.Zero }
func (stubLedgerService) InPocketPerDay() decimal.Decimal { return decimal.Zero }
func (stubLedgerService) Settings() domain.Settings       { return domain.DefaultSettings() }

func (stubLedgerService) PeriodStart(p usecase.Period) time.Time { return time.Time{} }

func (stubLedgerService) IncomeInPeriod(from, to *time.Time) decimal.Decimal  { return decimal.Zero }
func (stubLedgerService) ExpenseInPeriod(from, to *time.Time) decimal.Decimal { return decimal.Zero }
func (stubLedgerService) CountInPeriod(from, to *time.Time) int               { return 0 }
func (stubLedgerService) AvgDailyExpense() decimal.Decimal                    { return decimal.Zero }

func (stubLedgerService) CategoryStats(from, to *time.Time) []domain.CategoryStat { return nil }
func (stubLedgerService) MonthlyBars() []domain.MonthlyBar                        { return nil }

func (stubLedgerService) Categories() []domain.Category { return domain.DefaultCategories() }

func (stubLedgerService) CategoriesByType(t domain.CategoryType) []domain.Category {
	return nil
}

func (stubLedgerService) SetCurrency(ctx context.Context, code domain.Currency) error { return nil }
func (stubLedgerService) SetWeeklyDigest(ctx context.Context, enabled bool)           {}
