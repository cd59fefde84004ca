// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/openclaw/mission-control/internal/bridge"
	"github.com/openclaw/mission-control/internal/common"
	"github.com/openclaw/mission-control/internal/common/telemetry"
	"github.com/openclaw/mission-control/internal/llm"
	"github.com/openclaw/mission-control/internal/sqlite"
)

// Server exposes the mission control REST surface: one CRUD handler per
// entity, the telemetry rollups, the assistant endpoints and the proxy
// bridge. Handlers are independent; none calls another.
type Server struct {
	router   chi.Router
	store    *sqlite.Store
	provider llm.Provider
	relay    *bridge.Relay
}

func NewServer(store *sqlite.Store, provider llm.Provider, relay *bridge.Relay) (*Server, error) {
	logger := common.Logger()
	if store == nil {
		return nil, fmt.Errorf("store required")
	}
	if relay == nil {
		relay = bridge.New()
	}
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	srv := &Server{
		router:   chi.NewRouter(),
		store:    store,
		provider: provider,
		relay:    relay,
	}
	srv.routes()
	logger.Info("api: server ready", "provider", providerName)
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(requestLogger)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/agents", s.handleListAgents)
		r.Post("/agents", s.handleUpsertAgent)
		r.Delete("/agents/{id}", s.handleDeleteAgent)

		r.Get("/jobs", s.handleListJobs)
		r.Post("/jobs", s.handleUpsertJob)
		r.Delete("/jobs/{id}", s.handleDeleteJob)

		r.Get("/api-providers", s.handleListProviders)
		r.Post("/api-providers", s.handleUpsertProvider)
		r.Delete("/api-providers/{id}", s.handleDeleteProvider)

		r.Get("/activities", s.handleListActivities)
		r.Post("/activities", s.handleInsertActivity)

		r.Get("/work", s.handleListWork)
		r.Post("/work", s.handleInsertWork)

		r.Get("/intel", s.handleListIntel)
		r.Post("/intel", s.handleUpsertIntel)

		r.Get("/notes", s.handleListNotes)
		r.Post("/notes", s.handleInsertNote)

		r.Get("/boardroom/sessions", s.handleListBoardroomSessions)
		r.Post("/boardroom/sessions", s.handleUpsertBoardroomSession)
		r.Get("/boardroom/messages/{sessionId}", s.handleListBoardroomMessages)
		r.Post("/boardroom/messages", s.handleInsertBoardroomMessage)
		r.Get("/boardroom/tasks", s.handleListBoardroomTasks)
		r.Post("/boardroom/tasks", s.handleUpsertBoardroomTask)
		r.Delete("/boardroom/tasks/{id}", s.handleDeleteBoardroomTask)
		r.Post("/boardroom/summary", s.handleBoardroomSummary)

		r.Get("/conversations", s.handleListConversations)
		r.Post("/conversations", s.handleUpsertConversation)
		r.Delete("/conversations/{id}", s.handleDeleteConversation)

		r.Get("/messages/{conversationId}", s.handleListMessages)
		r.Post("/messages", s.handleInsertMessage)
		r.Delete("/messages/{conversationId}", s.handleDeleteMessages)

		r.Get("/telemetry/summary", s.handleTelemetrySummary)
		r.Get("/telemetry/usage", s.handleTelemetryUsage)
		r.Post("/telemetry", s.handleInsertTelemetry)

		r.Post("/proxy/ec2", s.handleProxy)
		r.Post("/assistant", s.handleAssistant)
		r.Get("/logs", s.handleLogs)
	})

	s.mountUI()
}

// mountUI serves the single-page dashboard from web/ui when the assets are
// present next to the binary.
func (s *Server) mountUI() {
	logger := common.Logger()
	uiPath := filepath.Join("web", "ui")
	if _, err := os.Stat(filepath.Join(uiPath, "index.html")); err != nil {
		logger.Warn("api: ui assets missing", "path", uiPath)
		return
	}
	fileServer := http.FileServer(http.Dir(uiPath))
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(uiPath, "index.html"))
	})
	s.router.Get("/ui/*", func(w http.ResponseWriter, r *http.Request) {
		http.StripPrefix("/ui/", fileServer).ServeHTTP(w, r)
	})
	logger.Info("api: ui assets mounted", "path", uiPath)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, common.LogEntries())
}

func requestLogger(next http.Handler) http.Handler {
	logger := common.Logger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		elapsed := time.Since(start)
		telemetry.ObserveRequest(r.Method, recorder.status, elapsed)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", recorder.status, "dur", elapsed, "remote", r.RemoteAddr)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeErrorDetails keeps a stable operator-facing message while attaching
// the underlying failure for debugging.
func writeErrorDetails(w http.ResponseWriter, status int, message string, err error) {
	logger := common.Logger()
	logger.Error("request failed", "status", status, "message", message, "error", err)
	writeJSON(w, status, map[string]string{"error": message, "details": err.Error()})
}
