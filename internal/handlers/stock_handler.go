package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/service"
)

// StockHandler handles stock-related HTTP requests
type StockHandler struct {
	service *service.StockService
	log     *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service *service.StockService, log *slog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		log:     log,
	}
}

// UpdateStockRequest is the body of PUT /api/stock/{productId}
type UpdateStockRequest struct {
	Quantity int64 `json:"quantity"`
}

// ReserveRequest is the body of POST /api/stock/reserve
type ReserveRequest struct {
	Products []entity.ProductWithQuantity `json:"products"`
}

// ReserveResponse is the result of a successful reservation. Each
// product entry carries the reserved quantity, not the remainder.
type ReserveResponse struct {
	ReservationID string              `json:"reservationId"`
	Products      []ProductDetailJSON `json:"products"`
}

// UpdateStock handles PUT /api/stock/{productId}.
// The body carries the absolute new quantity, not a delta.
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "productId")
	productID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Warn("invalid product ID format", "productId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode stock update request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	stock, err := h.service.UpdateQuantityByProductID(r.Context(), productID, req.Quantity)
	if err != nil {
		WriteDomainError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, adaptStock(stock), h.log)
	h.log.Info("stock updated", "product_id", productID, "quantity", req.Quantity)
}

// Reserve handles POST /api/stock/reserve
func (h *StockHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode reserve request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if len(req.Products) == 0 {
		WriteError(w, http.StatusBadRequest, "Reservation must contain at least one product", h.log)
		return
	}

	details, err := h.service.Reserve(r.Context(), req.Products)
	if err != nil {
		h.log.Error("failed to reserve stock", "error", err)
		WriteDomainError(w, err, h.log)
		return
	}

	response := ReserveResponse{
		ReservationID: uuid.New().String(),
		Products:      adaptProductDetails(details),
	}

	WriteJSON(w, http.StatusOK, response, h.log)
	h.log.Info("stock reserved", "reservation_id", response.ReservationID, "lines", len(details))
}
