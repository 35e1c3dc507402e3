package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/javohir/hamyon/internal/adapter/http/dto"
	"github.com/javohir/hamyon/internal/domain"
)

// SettingsService defines the behavior needed by SettingsHandler.
type SettingsService interface {
	Settings() domain.Settings
	SetCurrency(ctx context.Context, code domain.Currency) error
	SetWeeklyDigest(ctx context.Context, enabled bool)
}

// SettingsHandler handles settings HTTP requests.
type SettingsHandler struct {
	ledger SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(ledger SettingsService) *SettingsHandler {
	return &SettingsHandler{ledger: ledger}
}

// Get returns the current settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.SettingsFromDomain(h.ledger.Settings()))
}

// Update applies the fields present in the request. An invalid currency
// rejects the whole request before anything is changed.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.Currency != nil {
		if err := h.ledger.SetCurrency(r.Context(), domain.Currency(*req.Currency)); err != nil {
			writeError(w, mapDomainError(err), "failed to update currency", err.Error())
			return
		}
	}
	if req.WeeklyDigest != nil {
		h.ledger.SetWeeklyDigest(r.Context(), *req.WeeklyDigest)
	}

	writeJSON(w, http.StatusOK, dto.SettingsFromDomain(h.ledger.Settings()))
}
