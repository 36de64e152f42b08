package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/service"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}

// WriteDomainError maps the domain error taxonomy to HTTP statuses:
// validation errors are 400, missing references are 404, stock
// conflicts are 409, anything else is an opaque 500.
func WriteDomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var (
		invalidCategory *entity.InvalidCategoryError
		invalidProduct  *entity.InvalidProductError
		invalidStock    *entity.InvalidStockError
		categoryMissing *service.CategoryNotFoundError
		productMissing  *service.ProductNotFoundError
		stockMissing    *service.StockNotFoundError
		insufficient    *service.InsufficientStockError
		outOfStock      *service.ProductOutOfStockError
	)

	switch {
	case errors.As(err, &invalidCategory),
		errors.As(err, &invalidProduct),
		errors.As(err, &invalidStock):
		WriteError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.As(err, &categoryMissing),
		errors.As(err, &productMissing),
		errors.As(err, &stockMissing):
		WriteError(w, http.StatusNotFound, err.Error(), logger)
	case errors.As(err, &insufficient),
		errors.As(err, &outOfStock):
		WriteError(w, http.StatusConflict, err.Error(), logger)
	default:
		logger.Error("unexpected error", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}

// CategoryJSON is the transport shape of a category
type CategoryJSON struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Type      string    `json:"type"`
}

// StockJSON is the transport shape of a stock record
type StockJSON struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ProductID int64     `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

// ProductDetailJSON flattens a product detail for transport: the
// product fields plus its stock quantity and embedded category
type ProductDetailJSON struct {
	ID          int64         `json:"id"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Pictures    []string      `json:"pictures"`
	Quantity    int64         `json:"quantity"`
	Category    *CategoryJSON `json:"category,omitempty"`
}

func adaptCategory(c *entity.Category) *CategoryJSON {
	if c == nil {
		return nil
	}
	return &CategoryJSON{
		ID:        c.ID(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
		Type:      string(c.Type()),
	}
}

func adaptStock(s *entity.Stock) StockJSON {
	return StockJSON{
		ID:        s.ID(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
		ProductID: s.ProductID(),
		Quantity:  s.Quantity(),
	}
}

func adaptProductDetail(d *entity.ProductDetail) ProductDetailJSON {
	return ProductDetailJSON{
		ID:          d.Product.ID(),
		CreatedAt:   d.Product.CreatedAt(),
		UpdatedAt:   d.Product.UpdatedAt(),
		Name:        d.Product.Name(),
		Price:       d.Product.Price(),
		Description: d.Product.Description(),
		Pictures:    d.Product.Pictures(),
		Quantity:    d.Stock.Quantity(),
		Category:    adaptCategory(d.Category),
	}
}

func adaptProductDetails(details []*entity.ProductDetail) []ProductDetailJSON {
	out := make([]ProductDetailJSON, 0, len(details))
	for _, d := range details {
		out = append(out, adaptProductDetail(d))
	}
	return out
}
