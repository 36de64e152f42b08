package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/products-catalog/backend/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// CreateProductRequest is the body of POST /api/product
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Pictures    []string `json:"pictures"`
	CategoryID  int64    `json:"categoryId"`
	Quantity    int64    `json:"quantity"`
}

// ListProducts handles GET /api/product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.FindAll(r.Context())
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		WriteDomainError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, adaptProductDetails(details), h.log)
}

// GetProduct handles GET /api/product/{productId}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, adaptProductDetail(detail), h.log)
}

// CreateProduct handles POST /api/product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode create product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	detail, err := h.service.Create(r.Context(), req.Name, req.Price, req.Description, req.Pictures, req.CategoryID, req.Quantity)
	if err != nil {
		WriteDomainError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, adaptProductDetail(detail), h.log)
	h.log.Info("product created", "product_id", detail.Product.ID(), "category_id", detail.Category.ID())
}

// DeleteProduct handles DELETE /api/product/{productId}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		WriteDomainError(w, err, h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.log.Info("product deleted", "product_id", id)
}

// productID parses the productId URL parameter, writing a 400 when it
// is missing or not numeric
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "productId")
	if raw == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Warn("invalid product ID format", "productId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return 0, false
	}

	return id, true
}
