// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/history"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/render"
)

// History handles GET /api/v1/history?limit=
// Returns the session's recent query labels and result sets, newest first.
// limit applies to the result sets; query labels use history.DefaultQueries.
//
// @Summary Session history
// @Tags History
// @Produce json
// @Param limit query int false "result sets to return"
// @Success 200 {object} models.APIResponse{data=models.HistoryResponse}
// @Router /history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := getIntParam(r, "limit", history.DefaultRecommendations)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	log := h.sessionLog(r)
	params := HistoryParams{Session: log.ID(), Limit: limit}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	queries, err := log.Queries(r.Context(), history.DefaultQueries)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	entries, err := log.Recommendations(r.Context(), params.Limit)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	resp := models.HistoryResponse{
		Session:         log.ID(),
		Queries:         queries,
		Recommendations: make([]models.HistoryQuery, len(entries)),
	}
	for i, e := range entries {
		results := make([]models.Anime, len(e.Results))
		for j, rec := range e.Results {
			results[j] = render.ToAnime(rec.Item(), render.GenreFields)
		}
		resp.Recommendations[i] = models.HistoryQuery{
			Query:   e.Query,
			Mode:    e.Mode.String(),
			At:      e.At,
			Results: results,
		}
	}

	respondSuccess(w, resp, start)
}

// ClearHistory handles DELETE /api/v1/history
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	log := h.sessionLog(r)
	if err := log.Clear(r.Context()); err != nil {
		respondFailure(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Msg("session history cleared")
	respondSuccess(w, map[string]interface{}{
		"session": log.ID(),
		"cleared": true,
	}, start)
}
