// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the brand workflow over HTTP. Routes map 1:1
// onto orchestrator operations; all stage gating and error semantics live
// in the workflow package, this layer only translates.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pdiddy/brand-engine/internal/workflow"
	"github.com/pdiddy/brand-engine/pkg/types"
)

// Server handles the /api routes.
type Server struct {
	orch *workflow.Orchestrator
}

// New returns a Server over the given orchestrator.
func New(orch *workflow.Orchestrator) (*Server, error) {
	if orch == nil {
		return nil, errors.New("orchestrator is required")
	}
	return &Server{orch: orch}, nil
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/projects", s.handleProjectCreate)
	mux.HandleFunc("GET /api/projects", s.handleProjectList)
	mux.HandleFunc("GET /api/projects/{id}", s.handleProjectGet)
	mux.HandleFunc("POST /api/projects/{id}/strategy", s.handleStrategy)
	mux.HandleFunc("POST /api/projects/{id}/assets/{type}", s.handleAsset)
	mux.HandleFunc("POST /api/projects/{id}/complete-package", s.handlePackage)
	return logMiddleware(mux)
}

// --- handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	var input types.BusinessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.orch.CreateProject(r.Context(), input)
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProjectList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		limit = n
	}
	projects, err := s.orch.ListProjects(r.Context(), limit)
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	if projects == nil {
		projects = []types.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.orch.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	strategy, err := s.orch.GenerateStrategy(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, strategy)
}

// assetRequest is the optional body for single-asset generation.
type assetRequest struct {
	CustomContext string `json:"custom_context"`
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := s.orch.GenerateAsset(r.Context(), r.PathValue("id"),
		types.AssetType(r.PathValue("type")), req.CustomContext)
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// packageResponse is the complete-package payload.
type packageResponse struct {
	ProjectID       string        `json:"project_id"`
	GeneratedAssets []types.Asset `json:"generated_assets"`
	TotalAssets     int           `json:"total_assets"`
}

func (s *Server) handlePackage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	assets, err := s.orch.GenerateCompletePackage(r.Context(), id)
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, packageResponse{
		ProjectID:       id,
		GeneratedAssets: assets,
		TotalAssets:     len(assets),
	})
}

// --- helpers ---

// writeWorkflowError maps workflow errors onto HTTP statuses.
func (s *Server) writeWorkflowError(w http.ResponseWriter, err error) {
	var verr *workflow.ValidationError
	var gerr *workflow.GenerationError
	switch {
	case errors.As(err, &verr), errors.Is(err, workflow.ErrInvalidAssetType):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, workflow.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, workflow.ErrPrecondition):
		writeError(w, http.StatusConflict, err)
	case errors.As(err, &gerr):
		writeError(w, http.StatusBadGateway, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}
