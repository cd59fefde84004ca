// File path: internal/api/activity_handler.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.store.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (s *Server) handleInsertActivity(w http.ResponseWriter, r *http.Request) {
	var activity sqlite.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("agent_id", activity.AgentID, "activity", activity.Activity); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	activity.ID = fallbackID(activity.ID)
	if err := s.store.InsertActivity(r.Context(), activity); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("agent_activities")
	writeSuccess(w)
}

func (s *Server) handleListWork(w http.ResponseWriter, r *http.Request) {
	work, err := s.store.ListWork(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, work)
}

func (s *Server) handleInsertWork(w http.ResponseWriter, r *http.Request) {
	var work sqlite.Work
	if err := json.NewDecoder(r.Body).Decode(&work); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields(
		"agent_id", work.AgentID,
		"folder_path", work.FolderPath,
		"file_name", work.FileName,
	); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	work.ID = fallbackID(work.ID)
	if err := s.store.InsertWork(r.Context(), work); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("agent_work")
	writeSuccess(w)
}
