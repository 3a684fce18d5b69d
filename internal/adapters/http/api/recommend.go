package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RecommendHandler serves the scoring routes.
type RecommendHandler struct {
	deps Dependencies
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps Dependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps}
}

// HandleRecommend handles POST /recommendations requests.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recommendations"
	req, err := decodeResults(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	report, err := h.deps.Recommend(r.Context(), req.AthleteID, req.Results)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleExplain handles POST /sports/{sportID}/explain requests.
func (h *RecommendHandler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_explain"
	req, err := decodeResults(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	ex, err := h.deps.Explain(r.Context(), chi.URLParam(r, "sportID"), req.Results)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, ex)
}
