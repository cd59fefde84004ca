// File path: internal/api/agents_handler.go
package api

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/openclaw/mission-control/internal/common"
	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func (s *Server) handleListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := s.store.ListAgents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, agents)
}

func (s *Server) handleUpsertAgent(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var agent sqlite.Agent
	if err := json.NewDecoder(r.Body).Decode(&agent); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateID(agent.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("name", agent.Name, "role", agent.Role); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if agent.Status == "" {
		agent.Status = "idle"
	}
	if agent.AccessScope == "" {
		agent.AccessScope = "read-only"
	}
	if err := s.store.UpsertAgent(r.Context(), agent); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("agents")
	logger.Debug("api: agent upserted", "id", agent.ID)
	writeSuccess(w)
}

func (s *Server) handleDeleteAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteAgent(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountDelete("agents")
	writeSuccess(w)
}
