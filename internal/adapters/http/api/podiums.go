package api

import (
	"context"
	"net/http"

	"github.com/okian/racelens/internal/domain/podium"
	"github.com/okian/racelens/internal/domain/types"
)

// PodiumDependencies defines the interface for podium boards.
type PodiumDependencies interface {
	Podiums(ctx context.Context) ([]podium.Podium, error)
}

// PodiumHandler handles podium requests.
type PodiumHandler struct {
	deps PodiumDependencies
}

// NewPodiumHandler creates a new podium handler.
func NewPodiumHandler(deps PodiumDependencies) *PodiumHandler {
	return &PodiumHandler{deps: deps}
}

type podiumResponse struct {
	Category string      `json:"category"`
	Gender   string      `json:"gender"`
	Total    int         `json:"total"`
	Top      []types.Row `json:"top"`
}

// HandleGetPodiums handles GET /podiums requests.
func (h *PodiumHandler) HandleGetPodiums(w http.ResponseWriter, r *http.Request) {
	boards, err := h.deps.Podiums(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	out := make([]podiumResponse, len(boards))
	for i, b := range boards {
		out[i] = podiumResponse{
			Category: b.Category,
			Gender:   string(b.Gender),
			Total:    b.Total,
			Top:      types.Rows(b.Top),
		}
	}
	writeJSON(w, http.StatusOK, out)
}
