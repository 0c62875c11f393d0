// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/render"
)

// CatalogStats handles GET /api/v1/catalog/stats
//
// @Summary Catalog statistics
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CatalogStats}
// @Failure 503 {object} models.APIResponse "Catalog not loaded yet"
// @Router /catalog/stats [get]
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	e := h.engine(w)
	if e == nil {
		return
	}

	s := e.Stats()
	terms := e.Terms()
	weights := make([]models.TermWeight, len(terms))
	for i, t := range terms {
		weights[i] = models.TermWeight{Term: t.Term, IDF: t.IDF}
	}
	respondSuccess(w, models.CatalogStats{
		Items:      s.Items,
		Vocabulary: s.Vocabulary,
		Genres:     s.Genres,
		Types:      s.Types,
		Dropped:    s.Dropped,
		Analyzer:   s.Analyzer,
		BuiltAt:    s.BuiltAt,
		BuildTime:  s.BuildTime,
		Reloads:    h.engines.Swaps(),
		Terms:      weights,
	}, start)
}

// CatalogGenres handles GET /api/v1/catalog/genres
// Returns the distinct genre labels, sorted.
func (h *Handler) CatalogGenres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	e := h.engine(w)
	if e == nil {
		return
	}
	respondSuccess(w, e.Genres(), start)
}

// CatalogTypes handles GET /api/v1/catalog/types
// Returns the distinct media types, sorted.
func (h *Handler) CatalogTypes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	e := h.engine(w)
	if e == nil {
		return
	}
	respondSuccess(w, e.Types(), start)
}

// CatalogTop handles GET /api/v1/catalog/top?by=members|rating&limit=
//
// @Summary Most popular or highest rated titles
// @Tags Catalog
// @Produce json,html,plain
// @Param by query string false "members or rating" default(members)
// @Param limit query int false "number of titles"
// @Param format query string false "json, html or text"
// @Router /catalog/top [get]
func (h *Handler) CatalogTop(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := getIntParam(r, "limit", 0)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	q := r.URL.Query()
	params := TopParams{
		By:     strings.ToLower(strings.TrimSpace(q.Get("by"))),
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

	key := recommend.SortByMembers
	title := "Most popular titles"
	if params.By == string(recommend.SortByRating) {
		key = recommend.SortByRating
		title = "Highest rated titles"
	}

	v := render.TopView(title, e.Top(key, params.Limit))
	v.QueryTime = time.Since(start)
	respondList(w, r, params.Format, v)
}

// CatalogItem handles GET /api/v1/catalog/items/{name}
// The name must match a catalog title exactly.
func (h *Handler) CatalogItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := DetailParams{
		Name:   chi.URLParam(r, "name"),
		Format: r.URL.Query().Get("format"),
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	e := h.engine(w)
	if e == nil {
		return
	}

	item, err := e.Lookup(params.Name)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondDetail(w, r, params.Format, render.DetailView{
		Item:      item,
		QueryTime: time.Since(start),
	})
}
