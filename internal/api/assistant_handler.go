// File path: internal/api/assistant_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openclaw/mission-control/internal/common"
	"github.com/openclaw/mission-control/internal/llm"
)

type assistantRequest struct {
	Prompt  string          `json:"prompt"`
	Context json.RawMessage `json:"context"`
}

type summaryRequest struct {
	Transcript string `json:"transcript"`
}

const assistantSystemPrompt = "You are Mission Control AI, the brain of the agent fleet dashboard. " +
	"You help the operator manage AI agents, jobs and intel. " +
	"Be concise and action-oriented. Treat agents like employees, focus on quick wins, " +
	"explain logs or failures in plain language, and suggest boardroom topics or job refinements."

const summarySystemPrompt = "You are Mission Control AI. Analyze the provided boardroom transcript. " +
	"Extract quantifiable metrics mentioned and define clear, directly actionable items. " +
	"Respond with a JSON object holding \"summary\" (string), \"metrics\" (array of " +
	"{label, value, trend}) and \"actionItems\" (array of {task, assignee, priority})."

// handleAssistant answers a free-form operator prompt, optionally grounded in
// an opaque dashboard context blob the client assembles.
func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("prompt", req.Prompt); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if s.provider == nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("no completion provider configured"))
		return
	}
	messages := []llm.Message{{Role: "system", Content: assistantSystemPrompt}}
	if len(req.Context) > 0 {
		messages = append(messages, llm.Message{Role: "system", Content: "Current context:\n" + string(req.Context)})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Prompt})
	answer, err := s.provider.Chat(r.Context(), messages)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Debug("api: assistant completion", "provider", s.provider.Name(), "prompt_length", len(req.Prompt))
	writeJSON(w, http.StatusOK, map[string]string{
		"answer":   answer,
		"provider": s.provider.Name(),
	})
}

// handleBoardroomSummary condenses a session transcript into metrics and
// action items. The model is asked for JSON; when it complies the payload
// passes through verbatim, otherwise the raw answer ships under "summary".
func (s *Server) handleBoardroomSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("transcript", req.Transcript); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if s.provider == nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("no completion provider configured"))
		return
	}
	messages := []llm.Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: req.Transcript},
	}
	answer, err := s.provider.Chat(r.Context(), messages)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if json.Valid([]byte(answer)) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(answer))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": answer})
}
