package handler

import (
	"net/http"

	"github.com/javohir/hamyon/internal/adapter/http/dto"
	"github.com/javohir/hamyon/internal/domain"
)

// CategoryService defines the behavior needed by CategoryHandler.
type CategoryService interface {
	Categories() []domain.Category
	CategoriesByType(t domain.CategoryType) []domain.Category
}

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	ledger CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(ledger CategoryService) *CategoryHandler {
	return &CategoryHandler{ledger: ledger}
}

// List returns categories, optionally narrowed to those applicable to a
// transaction type. "both" categories always qualify.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var categories []domain.Category

	switch t := domain.CategoryType(r.URL.Query().Get("type")); t {
	case domain.CategoryExpense, domain.CategoryIncome:
		categories = h.ledger.CategoriesByType(t)
	default:
		categories = h.ledger.Categories()
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(categories))
}
