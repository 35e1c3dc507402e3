package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/javohir/hamyon/internal/adapter/http/dto"
	"github.com/javohir/hamyon/internal/domain"
	"github.com/javohir/hamyon/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	AddTransaction(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64)
	Filtered(filter domain.Filter, search string) []domain.Transaction
	RequestExport(ctx context.Context, format string)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	ledger TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger TransactionService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// List returns transactions matching the filter and search query, newest
// first, optionally truncated by limit.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := domain.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, mapDomainError(err), "invalid filter", err.Error())
		return
	}

	transactions := h.ledger.Filtered(filter, r.URL.Query().Get("search"))

	if limit := parseIntQuery(r, "limit", 0); limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        len(transactions),
	})
}

// Create records a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.ledger.AddTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// Delete removes a transaction. Deleting an id that does not exist still
// returns 204; the operation is idempotent.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction ID", err.Error())
		return
	}

	h.ledger.DeleteTransaction(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// Export forwards an export request to the bot backend.
func (h *TransactionHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req dto.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Format == "" {
		req.Format = "xlsx"
	}

	h.ledger.RequestExport(r.Context(), req.Format)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "requested", "format": req.Format})
}
