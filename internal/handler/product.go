package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/store"
)

// ProductStore is the store surface the product handlers need.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*store.InsertResult, error)
	DeleteProduct(ctx context.Context, id string) (*store.DeleteResult, error)
}

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	store  ProductStore
	logger *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store ProductStore, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{store: store, logger: logger}
}

// List handles GET /product.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /product/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.store.CreateProduct(r.Context(), product)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}

	h.logger.Info("product_created", "name", product.Name)
	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /product/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.store.DeleteProduct(r.Context(), id)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}

	h.logger.Info("product_deleted", "product_id", id)
	writeJSON(w, http.StatusOK, result)
}
