package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/store"
	"github.com/highway/highway/internal/token"
)

// UserStore is the store surface the user handlers need.
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertUser(ctx context.Context, email string, user model.User) (*store.UpdateResult, error)
	GrantAdmin(ctx context.Context, email string) (*store.UpdateResult, error)
}

// RoleInvalidator drops a cached role entry after a role change.
type RoleInvalidator interface {
	DeleteRole(ctx context.Context, email string) error
}

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	store  UserStore
	tokens *token.Service
	roles  RoleInvalidator
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler. roles may be nil when no
// role cache is configured.
func NewUserHandler(store UserStore, tokens *token.Service, roles RoleInvalidator, logger *slog.Logger) *UserHandler {
	return &UserHandler{store: store, tokens: tokens, roles: roles, logger: logger}
}

// List handles GET /user.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// upsertResponse is the body returned by Upsert: the write result plus
// a fresh token for the account, so sign-in and profile update share
// one endpoint.
type upsertResponse struct {
	Result *store.UpdateResult `json:"result"`
	Token  string              `json:"token"`
}

// Upsert handles PUT /user/{email}. It creates or updates the account
// and issues a fresh identity token for it.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.store.UpsertUser(r.Context(), email, user)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}

	signed, err := h.tokens.Issue(email)
	if err != nil {
		h.logger.Error("token issuance failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("user_upserted", "email", email, "upserted", result.UpsertedCount)
	writeJSON(w, http.StatusOK, upsertResponse{Result: result, Token: signed})
}

// CheckAdmin handles GET /admin/{email}. It reports whether the
// account holds the admin role; a missing account is simply not admin.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.store.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]bool{"admin": false})
			return
		}
		writeStoreError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"admin": user.IsAdmin()})
}

// GrantAdmin handles PUT /user/admin/{email}. The caller must already
// hold the admin role; that check lives in middleware.
func (h *UserHandler) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	result, err := h.store.GrantAdmin(r.Context(), email)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}

	if h.roles != nil {
		if err := h.roles.DeleteRole(r.Context(), email); err != nil {
			h.logger.Warn("role cache invalidation failed",
				slog.String("email", email),
				slog.String("error", err.Error()),
			)
		}
	}

	h.logger.Info("admin_granted", "email", email, "matched", result.MatchedCount)
	writeJSON(w, http.StatusOK, result)
}
