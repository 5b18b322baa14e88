package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/racelens/internal/domain/analytics"
	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/racetime"
	"github.com/okian/racelens/internal/domain/types"
)

// RunnerDependencies defines the interface for single-runner lookups.
type RunnerDependencies interface {
	Runner(ctx context.Context, position int) (model.Runner, error)
	Analyze(ctx context.Context, position int) (*analytics.Report, error)
}

// RunnerHandler handles runner and analysis requests.
type RunnerHandler struct {
	deps RunnerDependencies
}

// NewRunnerHandler creates a new runner handler.
func NewRunnerHandler(deps RunnerDependencies) *RunnerHandler {
	return &RunnerHandler{deps: deps}
}

type analysisResponse struct {
	*analytics.Report
	Row        types.Row        `json:"row"`
	SpeedText  string           `json:"speed"`
	Nearest    *analytics.Ahead `json:"nearest,omitempty"`
	Highlights []string         `json:"highlights"`
}

// HandleGetRunner handles GET /runners/{position} requests.
func (h *RunnerHandler) HandleGetRunner(w http.ResponseWriter, r *http.Request) {
	position, err := pathPosition(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	runner, err := h.deps.Runner(r.Context(), position)
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewRow(runner))
}

// HandleGetAnalysis handles GET /runners/{position}/analysis requests.
func (h *RunnerHandler) HandleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	position, err := pathPosition(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	report, err := h.deps.Analyze(r.Context(), position)
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	resp := analysisResponse{
		Report:     report,
		Row:        types.NewRow(report.Runner),
		SpeedText:  racetime.FormatSpeed(report.Speed),
		Highlights: report.Highlights(),
	}
	if n, ok := report.Nearest(); ok {
		resp.Nearest = &n
	}
	writeJSON(w, http.StatusOK, resp)
}

func pathPosition(r *http.Request) (int, error) {
	raw := r.PathValue("position")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, WrapKind("parse position "+strconv.Quote(raw), ErrBadRequest, ErrInvalidPosition)
	}
	return n, nil
}
