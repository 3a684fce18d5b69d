package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SportsHandler serves the catalogue routes.
type SportsHandler struct {
	deps Dependencies
}

// NewSportsHandler creates a new catalogue handler.
func NewSportsHandler(deps Dependencies) *SportsHandler {
	return &SportsHandler{deps: deps}
}

// HandleListSports handles GET /sports requests.
func (h *SportsHandler) HandleListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.deps.Sports(r.Context())
	if err != nil {
		writeServiceError(w, "api.list_sports", err)
		return
	}
	writeJSON(w, http.StatusOK, sports)
}

// HandleGetSport handles GET /sports/{sportID} requests.
func (h *SportsHandler) HandleGetSport(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Sport(r.Context(), chi.URLParam(r, "sportID"))
	if err != nil {
		writeServiceError(w, "api.get_sport", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
