package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/store"
)

// ProfileStore is the store surface the profile handler needs.
type ProfileStore interface {
	CreateProfile(ctx context.Context, profile model.Profile) (*store.InsertResult, error)
}

// ProfileHandler handles HTTP requests for shipping profiles.
type ProfileHandler struct {
	store  ProfileStore
	logger *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store ProfileStore, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{store: store, logger: logger}
}

// Create handles POST /myprofile.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var profile model.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.store.CreateProfile(r.Context(), profile)
	if err != nil {
		writeStoreError(h.logger, w, err)
		return
	}

	h.logger.Info("profile_created", "email", profile.Email)
	writeJSON(w, http.StatusOK, result)
}
