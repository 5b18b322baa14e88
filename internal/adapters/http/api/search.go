package api

import (
	"context"
	"net/http"

	"github.com/okian/racelens/internal/domain/search"
	"github.com/okian/racelens/internal/domain/types"
)

// SearchDependencies defines the interface for name search.
type SearchDependencies interface {
	Search(ctx context.Context, query string) (search.Suggestions, error)
}

// SearchHandler handles search requests.
type SearchHandler struct {
	deps SearchDependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

type searchResponse struct {
	Query     string      `json:"query"`
	Queried   bool        `json:"queried"`
	NoMatches bool        `json:"no_matches"`
	Runners   []types.Row `json:"runners"`
}

// HandleSearch handles GET /search?q= requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	out, err := h.deps.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Query:     out.Query,
		Queried:   out.Queried,
		NoMatches: out.NoMatches(),
		Runners:   types.Rows(out.Runners),
	})
}
