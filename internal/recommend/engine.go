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

	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/recommend/encoder"
	"github.com/tomtom215/animerec/internal/recommend/index"
)

// Engine holds one fitted catalog and answers queries against it.
// It is immutable after NewEngine and safe for concurrent use.
type Engine struct {
	cfg    *Config
	logger zerolog.Logger

	items   []Item
	vectors []encoder.Vector
	space   *encoder.VectorSpace
	index   *index.Index

	// byName maps a title to its first catalog position.
	byName map[string]int

	// Lowercased copies for case-insensitive matching.
	lowerNames  []string
	lowerGenres []string

	// Precomputed browse orders and distinct labels.
	byMembers []int
	byRating  []int
	genres    []string
	types     []string

	dropped   int
	builtAt   time.Time
	buildTime time.Duration

	similarCache *cache.Cache[*SimilarResult]
	genreCache   *cache.Cache[*GenreResult]
}

// NewEngine fits the encoder over items and builds the neighbor index.
// Items without a name or without any genre token are dropped. A nil cfg
// selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(items []Item, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	start := time.Now()

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.Clone()

	e := &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		byName: make(map[string]int, len(items)),
	}

	e.items = make([]Item, 0, len(items))
	for _, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		it.Type = strings.TrimSpace(it.Type)
		if it.GenreTokens == nil {
			it.GenreTokens = encoder.ParseGenres(it.Genre)
		}
		if !it.Valid() {
			e.dropped++
			continue
		}
		e.items = append(e.items, it)
	}
	if len(e.items) == 0 {
		return nil, fmt.Errorf("%w: %d items supplied, none valid", ErrEmptyCatalog, len(items))
	}

	docs := make([]string, len(e.items))
	for i, it := range e.items {
		docs[i] = it.Genre
	}

	// Validate has already accepted the analyzer name.
	analyzer, _ := encoder.ParseAnalyzer(string(cfg.Encoder.Analyzer))
	space, vectors, err := encoder.Fit(docs, encoder.Options{
		Analyzer:  analyzer,
		StopWords: cfg.Encoder.StopWords,
	})
	if err != nil {
		return nil, fmt.Errorf("fit encoder: %w", err)
	}
	e.space = space
	e.vectors = vectors
	e.index = index.Build(vectors)

	e.buildLookups()

	if cfg.Cache.Enabled {
		e.similarCache = cache.New[*SimilarResult](cfg.Cache.MaxEntries, cfg.Cache.TTL)
		e.genreCache = cache.New[*GenreResult](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	e.builtAt = time.Now().UTC()
	e.buildTime = time.Since(start)

	e.logger.Info().
		Int("items", len(e.items)).
		Int("dropped", e.dropped).
		Int("vocabulary", space.Dim()).
		Str("analyzer", string(space.Analyzer())).
		Dur("build_time", e.buildTime).
		Msg("recommendation engine built")

	return e, nil
}

// buildLookups fills the name index, lowercased copies, browse orders and
// distinct genre and type labels.
func (e *Engine) buildLookups() {
	n := len(e.items)
	e.lowerNames = make([]string, n)
	e.lowerGenres = make([]string, n)
	e.byMembers = make([]int, n)
	e.byRating = make([]int, n)

	genreSet := make(map[string]struct{})
	typeSet := make(map[string]struct{})

	for i, it := range e.items {
		if _, ok := e.byName[it.Name]; !ok {
			e.byName[it.Name] = i
		}
		e.lowerNames[i] = strings.ToLower(it.Name)
		e.lowerGenres[i] = strings.ToLower(it.Genre)
		e.byMembers[i] = i
		e.byRating[i] = i

		for _, g := range strings.Split(it.Genre, ",") {
			if g = strings.TrimSpace(g); g != "" {
				genreSet[g] = struct{}{}
			}
		}
		if t := strings.TrimSpace(it.Type); t != "" {
			typeSet[t] = struct{}{}
		}
	}

	sort.SliceStable(e.byMembers, func(a, b int) bool {
		return e.items[e.byMembers[a]].Members > e.items[e.byMembers[b]].Members
	})
	sort.SliceStable(e.byRating, func(a, b int) bool {
		return e.items[e.byRating[a]].Rating > e.items[e.byRating[b]].Rating
	})

	e.genres = sortedKeys(genreSet)
	e.types = sortedKeys(typeSet)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of indexed items.
func (e *Engine) Len() int {
	return len(e.items)
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// record hands a completed query to rec. Failures are logged only.
func (e *Engine) record(ctx context.Context, rec Recorder, entry HistoryEntry) {
	if rec == nil {
		return
	}
	if err := rec.Record(ctx, entry); err != nil {
		e.logger.Warn().
			Err(err).
			Str("mode", entry.Mode.String()).
			Str("query", entry.Query).
			Msg("failed to record query history")
	}
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// purgeCaches drops all cached query results.
func (e *Engine) purgeCaches() {
	if e.similarCache != nil {
		e.similarCache.Clear()
	}
	if e.genreCache != nil {
		e.genreCache.Clear()
	}
}
