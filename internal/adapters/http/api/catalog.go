package api

import (
	"context"
	"net/http"

	"github.com/okian/racelens/internal/domain/results"
)

// CatalogDependencies defines the interface for dataset-level summaries.
type CatalogDependencies interface {
	Categories(ctx context.Context) ([]string, error)
	Overview(ctx context.Context) (results.Overview, error)
	RaceName() string
}

// CatalogHandler handles category and overview requests.
type CatalogHandler struct {
	deps CatalogDependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogDependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

type overviewResponse struct {
	Race string `json:"race"`
	results.Overview
}

// HandleGetCategories handles GET /categories requests.
func (h *CatalogHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.deps.Categories(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// HandleGetOverview handles GET /overview requests.
func (h *CatalogHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.deps.Overview(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, overviewResponse{Race: h.deps.RaceName(), Overview: ov})
}
