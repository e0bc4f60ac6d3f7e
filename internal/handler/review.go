package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/store"
)

// ReviewStore is the store surface the review handlers need.
type ReviewStore interface {
	ListReviewsByEmail(ctx context.Context, email string) ([]model.Review, error)
	CreateReview(ctx context.Context, review model.Review) (*store.InsertResult, error)
}

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	store  ReviewStore
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(store ReviewStore, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{store: store, logger: logger}
}

// List handles GET /myreview?email=. Ownership of the email was already
// checked against the caller's identity in middleware.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	reviews, err := h.store.ListReviewsByEmail(r.Context(), email)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// Create handles POST /myreview.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var review model.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.store.CreateReview(r.Context(), review)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}

	h.logger.Info("review_created", "email", review.Email)
	writeJSON(w, http.StatusOK, result)
}
