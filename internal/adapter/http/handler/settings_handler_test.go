package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/javohir/hamyon/internal/adapter/http/dto"
	"github.com/javohir/hamyon/internal/domain"
)

type settingsServiceStub struct {
	settings      domain.Settings
	currencyErr   error
	gotCurrency   domain.Currency
	gotDigest     *bool
	currencyCalls int
}

func (s *settingsServiceStub) Settings() domain.Settings { return s.settings }

func (s *settingsServiceStub) SetCurrency(ctx context.Context, code domain.Currency) error {
	s.currencyCalls++
	if s.currencyErr != nil {
		return s.currencyErr
	}
	s.gotCurrency = code
	s.settings.Currency = code
	return nil
}

func (s *settingsServiceStub) SetWeeklyDigest(ctx context.Context, enabled bool) {
	s.gotDigest = &enabled
	s.settings.WeeklyDigest = enabled
}

func TestSettingsHandler_Get(t *testing.T) {
	h := NewSettingsHandler(&settingsServiceStub{settings: domain.DefaultSettings()})

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.SettingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Currency != "UZS" || !resp.WeeklyDigest {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSettingsHandler_Update(t *testing.T) {
	stub := &settingsServiceStub{settings: domain.DefaultSettings()}
	h := NewSettingsHandler(stub)

	body := bytes.NewBufferString(`{"currency":"USD","weeklyDigest":false}`)
	req := httptest.NewRequest(http.MethodPut, "/settings", body)
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.gotCurrency != domain.CurrencyUSD {
		t.Fatalf("expected currency USD, got %q", stub.gotCurrency)
	}
	if stub.gotDigest == nil || *stub.gotDigest {
		t.Fatalf("expected digest off, got %v", stub.gotDigest)
	}
}

func TestSettingsHandler_Update_PartialBody(t *testing.T) {
	stub := &settingsServiceStub{settings: domain.DefaultSettings()}
	h := NewSettingsHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewBufferString(`{"weeklyDigest":false}`))
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.currencyCalls != 0 {
		t.Fatal("absent currency must not touch the setting")
	}
	if stub.gotDigest == nil {
		t.Fatal("expected digest to be updated")
	}
}

func TestSettingsHandler_Update_InvalidCurrency(t *testing.T) {
	stub := &settingsServiceStub{
		settings:    domain.DefaultSettings(),
		currencyErr: domain.ErrInvalidCurrency,
	}
	h := NewSettingsHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewBufferString(`{"currency":"GBP"}`))
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
