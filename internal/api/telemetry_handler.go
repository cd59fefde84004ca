// File path: internal/api/telemetry_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func (s *Server) handleTelemetrySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.store.TelemetrySummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleTelemetryUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := s.store.TelemetryUsage(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, usage)
}

func (s *Server) handleInsertTelemetry(w http.ResponseWriter, r *http.Request) {
	var event sqlite.TelemetryEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("provider", event.Provider); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if event.Cost < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("cost must not be negative"))
		return
	}
	if event.TokensUsed < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("tokens_used must not be negative"))
		return
	}
	event.ID = fallbackID(event.ID)
	if err := s.store.InsertTelemetry(r.Context(), event); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("telemetry")
	writeSuccess(w)
}
