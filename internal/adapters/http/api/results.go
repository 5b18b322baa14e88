package api

import (
	"context"
	"net/http"

	"github.com/okian/racelens/internal/domain/results"
	"github.com/okian/racelens/internal/domain/types"
)

// ResultsDependencies defines the interface for the full results table.
type ResultsDependencies interface {
	Results(ctx context.Context, q results.Query) ([]types.Row, error)
}

// ResultsHandler handles results table requests.
type ResultsHandler struct {
	deps ResultsDependencies
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps ResultsDependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

type resultsResponse struct {
	Count int         `json:"count"`
	Rows  []types.Row `json:"rows"`
}

// HandleGetResults handles GET /results?name=&category=&gender= requests.
func (h *ResultsHandler) HandleGetResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rows, err := h.deps.Results(r.Context(), results.Query{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		Gender:   q.Get("gender"),
	})
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{Count: len(rows), Rows: rows})
}
