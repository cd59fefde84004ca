// File path: internal/api/intel_handler.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func (s *Server) handleListIntel(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListIntel(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleUpsertIntel(w http.ResponseWriter, r *http.Request) {
	var item sqlite.IntelItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateID(item.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("title", item.Title); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.UpsertIntel(r.Context(), item); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("intel")
	writeSuccess(w)
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.store.ListNotes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleInsertNote(w http.ResponseWriter, r *http.Request) {
	var note sqlite.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("content", note.Content); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	note.ID = fallbackID(note.ID)
	if err := s.store.InsertNote(r.Context(), note); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("notes")
	writeSuccess(w)
}
