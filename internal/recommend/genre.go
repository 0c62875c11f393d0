// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/metrics"
)

// RecommendByGenre returns titles tagged with a genre label, ranked by rating
// or member count.
//
// Nearest neighbors of the label's vector are re-validated by literal,
// case-insensitive containment of the label in each raw genre string, then
// stable-sorted on the chosen attribute so ties keep distance order.
//
// A partial label such as "Sci" is accepted when some genre string contains
// it, but under the genre analyzer it is not a vocabulary term and encodes to
// a zero vector. The candidates are then the first GenreCandidates titles in
// catalog order, so the result may be empty even though matching titles
// exist further down the catalog.
func (e *Engine) RecommendByGenre(ctx context.Context, req GenreRequest, rec Recorder) (*GenreResult, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := strings.TrimSpace(req.Genre)
	if label == "" {
		return nil, fmt.Errorf("%w: genre is required", ErrInvalidRequest)
	}
	sortBy, err := ParseSortKey(string(req.SortBy))
	if err != nil {
		return nil, err
	}
	limit := e.cfg.clampLimit(req.Limit, e.cfg.Limits.GenreResults)

	needle := strings.ToLower(label)
	if !e.hasGenre(needle) {
		metrics.RecordNotFound(ModeGenre.String())
		return nil, fmt.Errorf("%w: genre %q", ErrNotFound, label)
	}

	logger := e.logger.With().
		Str("mode", ModeGenre.String()).
		Str("genre", label).
		Str("sort_by", string(sortBy)).
		Int("limit", limit).
		Logger()

	key := cache.GenerateKey(ModeGenre.String(), struct {
		Genre  string
		SortBy SortKey
		Limit  int
	}{needle, sortBy, limit})

	result, hit := e.cachedGenre(key)
	if !hit {
		result, err = e.byGenre(label, needle, sortBy, limit)
		if err != nil {
			logger.Error().Err(err).Msg("genre query failed")
			return nil, err
		}
		if e.genreCache != nil {
			e.genreCache.Set(key, result)
		}
	} else if result.Genre != label {
		// The cache key is case-insensitive; report the label as asked.
		relabeled := *result
		relabeled.Genre = label
		result = &relabeled
	}

	metrics.RecordRecommendation(ModeGenre.String(), time.Since(start), len(result.Items), false)
	logger.Debug().
		Bool("cached", hit).
		Int("candidates", result.Candidates).
		Int("matched", result.Matched).
		Int("returned", len(result.Items)).
		Msg("genre query complete")

	e.record(ctx, rec, HistoryEntry{
		Query:   GenreLabel(label),
		Mode:    ModeGenre,
		Results: copyItems(result.Items),
		At:      time.Now().UTC(),
	})

	return result, nil
}

// hasGenre reports whether any raw genre string contains needle, which must
// already be lowercased.
func (e *Engine) hasGenre(needle string) bool {
	for _, g := range e.lowerGenres {
		if strings.Contains(g, needle) {
			return true
		}
	}
	return false
}

func (e *Engine) cachedGenre(key string) (*GenreResult, bool) {
	if e.genreCache == nil {
		return nil, false
	}
	res, ok := e.genreCache.Get(key)
	metrics.RecordCacheLookup(ModeGenre.String(), ok)
	return res, ok
}

// byGenre runs the genre-text pipeline without caching or recording.
func (e *Engine) byGenre(label, needle string, sortBy SortKey, limit int) (*GenreResult, error) {
	neighbors, err := e.index.Query(e.space.Transform(label), e.cfg.Limits.GenreCandidates)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	matched := make([]Item, 0, len(neighbors))
	for _, n := range neighbors {
		if strings.Contains(e.lowerGenres[n.Index], needle) {
			matched = append(matched, e.items[n.Index])
		}
	}

	sortItems(matched, sortBy)

	items := matched
	if len(items) > limit {
		items = items[:limit:limit]
	}

	return &GenreResult{
		Genre:      label,
		SortBy:     sortBy,
		Items:      items,
		Matched:    len(matched),
		Candidates: len(neighbors),
	}, nil
}

// sortItems stable-sorts items descending by key.
func sortItems(items []Item, key SortKey) {
	switch key {
	case SortByMembers:
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Members > items[b].Members
		})
	default:
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Rating > items[b].Rating
		})
	}
}
