package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pawhope/pawhope-gobackend/internal/services"
)

// StatsStore computes per-user overview numbers.
type StatsStore interface {
	Overview(ctx context.Context, email string) (*services.OverviewStats, error)
}

type StatsHandler struct {
	service StatsStore
}

func NewStatsHandler(service StatsStore) *StatsHandler {
	return &StatsHandler{service: service}
}

// Overview handles GET /overview-stats/{email}
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Overview(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
