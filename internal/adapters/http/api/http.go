// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/racelens/internal/adapters/repository"
	"github.com/okian/racelens/internal/domain/analytics"
	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/pkg/logger"
)

// Dependencies required by HTTP handlers. Each handler only sees the narrow
// interface it needs.
type Dependencies interface {
	SearchDependencies
	RunnerDependencies
	PodiumDependencies
	ResultsDependencies
	CatalogDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	searchHandler  *SearchHandler
	runnerHandler  *RunnerHandler
	podiumHandler  *PodiumHandler
	resultsHandler *ResultsHandler
	catalogHandler *CatalogHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		searchHandler:  NewSearchHandler(deps),
		runnerHandler:  NewRunnerHandler(deps),
		podiumHandler:  NewPodiumHandler(deps),
		resultsHandler: NewResultsHandler(deps),
		catalogHandler: NewCatalogHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestID(MetricsMiddleware(h, endpoint)))
	}

	route("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	route("GET /stats", "stats", s.statsHandler.HandleStats)
	route("GET /search", "search", s.searchHandler.HandleSearch)
	route("GET /runners/{position}", "runner", s.runnerHandler.HandleGetRunner)
	route("GET /runners/{position}/analysis", "analysis", s.runnerHandler.HandleGetAnalysis)
	route("GET /podiums", "podiums", s.podiumHandler.HandleGetPodiums)
	route("GET /results", "results", s.resultsHandler.HandleGetResults)
	route("GET /categories", "categories", s.catalogHandler.HandleGetCategories)
	route("GET /overview", "overview", s.catalogHandler.HandleGetOverview)

	logger.Get().Debug(ctx, "api routes registered")
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps upstream error kinds onto HTTP statuses.
func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, ErrBadRequest), errors.Is(err, model.ErrUnknownGender):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, analytics.ErrEmptyCategory),
		errors.Is(err, analytics.ErrNoCategoryWinner),
		errors.Is(err, analytics.ErrInvalidTime),
		errors.Is(err, analytics.ErrEmptyStore):
		writeError(w, http.StatusUnprocessableEntity, "inconsistent_data", err)
	default:
		logger.Get().Error(ctx, "request failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
