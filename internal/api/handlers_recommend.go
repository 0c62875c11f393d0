// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/render"
)

// queryTimeout bounds a single recommendation query.
const queryTimeout = 10 * time.Second

// ResolveTitle handles GET /api/v1/recommendations/resolve?q=
// Returns catalog titles containing q, case-insensitively, in catalog order.
//
// @Summary Resolve a partial title
// @Tags Recommendations
// @Produce json
// @Param q query string true "partial title"
// @Success 200 {object} models.APIResponse{data=models.ResolveResponse}
// @Router /recommendations/resolve [get]
func (h *Handler) ResolveTitle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := ResolveParams{Query: r.URL.Query().Get("q")}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	e := h.engine(w)
	if e == nil {
		return
	}

	matches := e.ResolveTitle(params.Query)
	if matches == nil {
		matches = []string{}
	}
	respondSuccess(w, models.ResolveResponse{
		Query:   params.Query,
		Matches: matches,
	}, start)
}

// RecommendSimilar handles GET /api/v1/recommendations/similar?title=&type=&limit=
//
// @Summary Titles with the most similar genre composition
// @Tags Recommendations
// @Produce json,html,plain
// @Param title query string true "exact seed title"
// @Param type query string false "media type filter, All disables it"
// @Param limit query int false "results wanted"
// @Param format query string false "json, html or text"
// @Success 200 {object} models.APIResponse{data=models.AnimeList}
// @Failure 404 {object} models.APIResponse "Unknown title"
// @Router /recommendations/similar [get]
func (h *Handler) RecommendSimilar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := getIntParam(r, "limit", 0)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	q := r.URL.Query()
	params := SimilarParams{
		Title:  q.Get("title"),
		Type:   q.Get("type"),
		Limit:  limit,
		Format: q.Get("format"),
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	e := h.engine(w)
	if e == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	res, err := e.RecommendSimilar(ctx, recommend.SimilarRequest{
		Title: params.Title,
		Type:  params.Type,
		Limit: params.Limit,
	}, h.sessionLog(r))
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	if res.Partial {
		logging.Ctx(r.Context()).Debug().
			Str("seed", sanitizeLogValue(res.Seed.Name)).
			Int("found", res.Found).
			Int("requested", res.Requested).
			Msg("partial similar result")
	}

	v := render.SimilarView(res)
	v.QueryTime = time.Since(start)
	respondList(w, r, params.Format, v)
}

// RecommendByGenre handles GET /api/v1/recommendations/genre?genre=&sort=&limit=
//
// @Summary Titles matching a genre label
// @Tags Recommendations
// @Produce json,html,plain
// @Param genre query string true "genre label, matched case-insensitively"
// @Param sort query string false "rating or members" default(rating)
// @Param limit query int false "results wanted"
// @Param format query string false "json, html or text"
// @Success 200 {object} models.APIResponse{data=models.AnimeList}
// @Failure 404 {object} models.APIResponse "Unknown genre"
// @Router /recommendations/genre [get]
func (h *Handler) RecommendByGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := getIntParam(r, "limit", 0)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	q := r.URL.Query()
	params := GenreParams{
		Genre:  q.Get("genre"),
		Sort:   strings.ToLower(strings.TrimSpace(q.Get("sort"))),
		Limit:  limit,
		Format: q.Get("format"),
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	sortBy, err := recommend.ParseSortKey(params.Sort)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	e := h.engine(w)
	if e == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	res, err := e.RecommendByGenre(ctx, recommend.GenreRequest{
		Genre:  params.Genre,
		SortBy: sortBy,
		Limit:  params.Limit,
	}, h.sessionLog(r))
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	v := render.GenreView(res)
	v.QueryTime = time.Since(start)
	respondList(w, r, params.Format, v)
}
