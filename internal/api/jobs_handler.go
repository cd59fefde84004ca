// File path: internal/api/jobs_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/sqlite"
)

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListJobs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleUpsertJob(w http.ResponseWriter, r *http.Request) {
	var job sqlite.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateID(job.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := requireFields("name", job.Name); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if job.Cost < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("cost must not be negative"))
		return
	}
	if job.Status == "" {
		job.Status = "active"
	}
	if err := s.store.UpsertJob(r.Context(), job); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountUpsert("jobs")
	writeSuccess(w)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteJob(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	telemetry.CountDelete("jobs")
	writeSuccess(w)
}
