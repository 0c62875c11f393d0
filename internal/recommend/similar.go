// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend/encoder"
)

// ResolveTitle returns the distinct catalog names containing query,
// case-insensitively, in catalog order. An empty result means no title
// matched; a blank query matches nothing.
func (e *Engine) ResolveTitle(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var names []string
	seen := make(map[string]struct{})
	for i, name := range e.lowerNames {
		if !strings.Contains(name, q) {
			continue
		}
		orig := e.items[i].Name
		if _, dup := seen[orig]; dup {
			continue
		}
		seen[orig] = struct{}{}
		names = append(names, orig)
	}
	return names
}

// Lookup returns the first item named exactly name. Surrounding whitespace
// is ignored, matching how names are stored.
func (e *Engine) Lookup(name string) (Item, error) {
	name = strings.TrimSpace(name)
	i, ok := e.byName[name]
	if !ok {
		return Item{}, fmt.Errorf("%w: title %q", ErrNotFound, name)
	}
	return e.items[i], nil
}

// typeFilter returns the effective type filter; "" means no filtering.
// A filter naming a catalog type in different case is mapped to the catalog
// spelling, preferring an exact match.
func (e *Engine) typeFilter(typ string) string {
	typ = strings.TrimSpace(typ)
	if typ == "" || strings.EqualFold(typ, AllTypes) {
		return ""
	}
	for _, t := range e.types {
		if t == typ {
			return t
		}
	}
	for _, t := range e.types {
		if strings.EqualFold(t, typ) {
			return t
		}
	}
	return typ
}

// RecommendSimilar returns titles whose genre composition is closest to the
// seed title's.
//
// Candidates are visited in ascending cosine distance. A candidate is skipped
// when it is the seed, when its name was already accepted, when it fails the
// type filter or when it shares no genre label with the seed. The walk stops
// once Limit titles are accepted or candidates run out; the latter yields a
// partial result, not an error.
func (e *Engine) RecommendSimilar(ctx context.Context, req SimilarRequest, rec Recorder) (*SimilarResult, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed, err := e.Lookup(req.Title)
	if err != nil {
		metrics.RecordNotFound(ModeSimilar.String())
		return nil, err
	}

	typ := e.typeFilter(req.Type)
	limit := e.cfg.clampLimit(req.Limit, e.cfg.Limits.SeedResults)

	logger := e.logger.With().
		Str("mode", ModeSimilar.String()).
		Str("seed", seed.Name).
		Str("type", typ).
		Int("limit", limit).
		Logger()

	key := cache.GenerateKey(ModeSimilar.String(), struct {
		Title string
		Type  string
		Limit int
	}{seed.Name, typ, limit})

	result, hit := e.cachedSimilar(key)
	if !hit {
		result, err = e.similar(seed, typ, limit)
		if err != nil {
			logger.Error().Err(err).Msg("similar query failed")
			return nil, err
		}
		if e.similarCache != nil {
			e.similarCache.Set(key, result)
		}
	}

	metrics.RecordRecommendation(ModeSimilar.String(), time.Since(start), result.Found, result.Partial)
	logger.Debug().
		Bool("cached", hit).
		Int("candidates", result.Candidates).
		Int("found", result.Found).
		Bool("partial", result.Partial).
		Msg("similar query complete")

	e.record(ctx, rec, HistoryEntry{
		Query:   SimilarLabel(seed.Name, typ),
		Mode:    ModeSimilar,
		Results: copyItems(result.Items),
		At:      time.Now().UTC(),
	})

	return result, nil
}

func (e *Engine) cachedSimilar(key string) (*SimilarResult, bool) {
	if e.similarCache == nil {
		return nil, false
	}
	res, ok := e.similarCache.Get(key)
	metrics.RecordCacheLookup(ModeSimilar.String(), ok)
	return res, ok
}

// similar runs the seed-item pipeline without caching or recording.
func (e *Engine) similar(seed Item, typ string, limit int) (*SimilarResult, error) {
	neighbors, err := e.index.Query(e.space.Transform(seed.Genre), e.cfg.Limits.SeedCandidates)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	accepted := make([]Item, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, n := range neighbors {
		if len(accepted) >= limit {
			break
		}
		cand := e.items[n.Index]
		if cand.Name == seed.Name {
			continue
		}
		if _, dup := seen[cand.Name]; dup {
			continue
		}
		if typ != "" && cand.Type != typ {
			continue
		}
		if !encoder.Overlaps(seed.GenreTokens, cand.GenreTokens) {
			continue
		}
		seen[cand.Name] = struct{}{}
		accepted = append(accepted, cand)
	}

	typeLabel := typ
	if typeLabel == "" {
		typeLabel = AllTypes
	}

	return &SimilarResult{
		Seed:       seed,
		Type:       typeLabel,
		Items:      accepted,
		Found:      len(accepted),
		Requested:  limit,
		Candidates: len(neighbors),
		Partial:    len(accepted) < limit,
	}, nil
}
