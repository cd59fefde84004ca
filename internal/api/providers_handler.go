// File path: internal/api/providers_handler.go
package api

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func (s *Server) handleListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := s.store.ListProviders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, providers)
}

func (s *Server) handleUpsertProvider(w http.ResponseWriter, r *http.Request) {
	// is_active defaults to true, so an absent value must be told apart
	// from an explicit false.
	var req struct {
		sqlite.APIProvider
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	provider := req.APIProvider
	if err := validateID(provider.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields(
		"name", provider.Name,
		"provider_type", provider.ProviderType,
		"api_key", provider.APIKey,
	); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	provider.IsActive = true
	if req.IsActive != nil {
		provider.IsActive = *req.IsActive
	}
	if err := s.store.UpsertProvider(r.Context(), provider); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("api_providers")
	writeSuccess(w)
}

func (s *Server) handleDeleteProvider(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteProvider(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountDelete("api_providers")
	writeSuccess(w)
}
