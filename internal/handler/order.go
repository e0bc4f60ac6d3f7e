package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/highway/highway/internal/metrics"
	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/settlement"
	"github.com/highway/highway/internal/store"
)

// OrderStore is the store surface the order handlers need.
type OrderStore interface {
	ListOrdersByEmail(ctx context.Context, email string) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	CreateOrder(ctx context.Context, order model.Order) (*store.InsertResult, error)
}

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	store      OrderStore
	settlement *settlement.Service
	logger     *slog.Logger
	metrics    metrics.Recorder
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store OrderStore, settle *settlement.Service, logger *slog.Logger, recorder metrics.Recorder) *OrderHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &OrderHandler{store: store, settlement: settle, logger: logger, metrics: recorder}
}

// List handles GET /order?email=. Ownership of the email was already
// checked against the caller's identity in middleware.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	orders, err := h.store.ListOrdersByEmail(r.Context(), email)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Get handles GET /order/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Create handles POST /order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.store.CreateOrder(r.Context(), order)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}

	h.metrics.IncOrderCreated()
	h.logger.Info("order_created", "email", order.Email)
	writeJSON(w, http.StatusOK, result)
}

// Settle handles PATCH /order/{id}: it records the payment reported by
// the client and marks the order paid, returning the updated order.
func (h *OrderHandler) Settle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input settlement.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.settlement.Settle(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "not found")
		case errors.Is(err, store.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "invalid id")
		default:
			h.logger.Error("settlement failed",
				slog.String("order_id", id),
				slog.String("error", err.Error()),
			)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, order)
}
