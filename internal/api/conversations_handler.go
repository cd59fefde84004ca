// File path: internal/api/conversations_handler.go
package api

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := s.store.ListConversations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

func (s *Server) handleUpsertConversation(w http.ResponseWriter, r *http.Request) {
	var conversation sqlite.Conversation
	if err := json.NewDecoder(r.Body).Decode(&conversation); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateID(conversation.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("agent_id", conversation.AgentID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.UpsertConversation(r.Context(), conversation); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("conversations")
	writeSuccess(w)
}

func (s *Server) handleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteConversation(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountDelete("conversations")
	writeSuccess(w)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationId")
	messages, err := s.store.ListMessages(r.Context(), conversationID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleInsertMessage(w http.ResponseWriter, r *http.Request) {
	var message sqlite.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("conversation_id", message.ConversationID, "content", message.Content); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	message.ID = fallbackID(message.ID)
	if message.Role == "" {
		message.Role = "user"
	}
	if err := s.store.InsertMessage(r.Context(), message); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("messages")
	writeSuccess(w)
}

func (s *Server) handleDeleteMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationId")
	if err := s.store.DeleteMessages(r.Context(), conversationID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountDelete("messages")
	writeSuccess(w)
}
