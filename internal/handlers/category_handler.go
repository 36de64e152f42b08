package handlers

import (
	"log/slog"
	"net/http"

	"github.com/products-catalog/backend/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	service *service.CategoryService
	log     *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *service.CategoryService, log *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// ListCategories handles GET /api/category
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.FindAll(r.Context())
	if err != nil {
		WriteDomainError(w, err, h.log)
		return
	}

	out := make([]CategoryJSON, 0, len(categories))
	for _, c := range categories {
		out = append(out, *adaptCategory(c))
	}

	WriteJSON(w, http.StatusOK, out, h.log)
}
