// File path: internal/api/boardroom_handler.go
package api

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func (s *Server) handleListBoardroomSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.ListBoardroomSessions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleUpsertBoardroomSession(w http.ResponseWriter, r *http.Request) {
	var session sqlite.BoardroomSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateID(session.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("title", session.Title); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.UpsertBoardroomSession(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("boardroom_sessions")
	writeSuccess(w)
}

func (s *Server) handleListBoardroomMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	messages, err := s.store.ListBoardroomMessages(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleInsertBoardroomMessage(w http.ResponseWriter, r *http.Request) {
	var message sqlite.BoardroomMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("session_id", message.SessionID, "content", message.Content); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	message.ID = fallbackID(message.ID)
	if err := s.store.InsertBoardroomMessage(r.Context(), message); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("boardroom_messages")
	writeSuccess(w)
}

func (s *Server) handleListBoardroomTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListBoardroomTasks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleUpsertBoardroomTask(w http.ResponseWriter, r *http.Request) {
	var task sqlite.BoardroomTask
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateID(task.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("text", task.Text); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.UpsertBoardroomTask(r.Context(), task); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("boardroom_tasks")
	writeSuccess(w)
}

func (s *Server) handleDeleteBoardroomTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteBoardroomTask(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountDelete("boardroom_tasks")
	writeSuccess(w)
}
