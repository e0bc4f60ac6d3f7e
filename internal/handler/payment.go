package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/highway/highway/internal/settlement"
)

// PaymentHandler handles HTTP requests for payment intents.
type PaymentHandler struct {
	settlement *settlement.Service
	logger     *slog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(settle *settlement.Service, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{settlement: settle, logger: logger}
}

// createIntentRequest is the body of a payment intent request. The
// price arrives in major currency units.
type createIntentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntent handles POST /create-payment-intent. It returns the
// provider client secret the frontend needs to confirm the charge.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Price <= 0 {
		writeError(w, http.StatusBadRequest, "price must be positive")
		return
	}

	secret, err := h.settlement.CreateIntent(r.Context(), req.Price)
	if err != nil {
		h.logger.Error("payment intent creation failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}
