// File path: internal/api/bridge_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openclaw/mission-control/internal/bridge"
	"github.com/openclaw/mission-control/internal/common/telemetry"
)

// handleProxy relays a JSON payload to a private backend on behalf of the
// browser. Single attempt, fail fast; the remote response comes back
// verbatim.
func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	var req bridge.ForwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.TargetHost == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("target_host is required"))
		return
	}
	payload, err := s.relay.Forward(r.Context(), req)
	telemetry.CountBridgeForward(err != nil)
	if err != nil {
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to connect to EC2 instance", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
