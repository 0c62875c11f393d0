// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/recommend/encoder"
)

// memRecorder collects history entries for assertions.
type memRecorder struct {
	mu      sync.Mutex
	entries []HistoryEntry
	err     error
}

func (m *memRecorder) Record(_ context.Context, entry HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return m.err
}

func (m *memRecorder) all() []HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]HistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func testCatalog() []Item {
	return []Item{
		NewItem("Fullmetal Alchemist: Brotherhood", "Action, Adventure, Drama, Fantasy, Magic, Military, Shounen", 9.26, 793665, "TV"),
		NewItem("Steins;Gate", "Sci-Fi, Thriller", 9.17, 673572, "TV"),
		NewItem("Gintama", "Action, Comedy, Historical, Parody, Samurai, Sci-Fi, Shounen", 9.04, 336376, "TV"),
		NewItem("Fullmetal Alchemist", "Action, Adventure, Comedy, Drama, Fantasy, Magic, Military, Shounen", 8.33, 600384, "TV"),
		NewItem("Fullmetal Alchemist: The Sacred Star of Milos", "Action, Adventure, Comedy, Drama, Fantasy, Magic, Military, Shounen", 7.59, 98581, "Movie"),
		NewItem("Toradora!", "Comedy, Romance, School, Slice of Life", 8.45, 633817, "TV"),
		NewItem("Clannad", "Comedy, Drama, Romance, School, Slice of Life, Supernatural", 8.30, 566690, "TV"),
		NewItem("Kimi no Na wa.", "Drama, Romance, School, Supernatural", 9.37, 200630, "Movie"),
		NewItem("Mobile Suit Gundam", "Action, Mecha, Military, Sci-Fi, Space", 7.88, 44911, "TV"),
		NewItem("Code Geass", "Action, Mecha, Military, School, Sci-Fi, Super Power", 8.83, 715151, "TV"),
	}
}

func newTestEngine(t *testing.T, items []Item, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(items, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewEngine_EmptyCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []Item
	}{
		{"nil", nil},
		{"empty", []Item{}},
		{"only invalid items", []Item{
			NewItem("", "Action", 8, 10, "TV"),
			NewItem("No Genre", " , ", 8, 10, "TV"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewEngine(tt.items, nil, zerolog.Nop())
			if !errors.Is(err, ErrEmptyCatalog) {
				t.Errorf("NewEngine() error = %v, want ErrEmptyCatalog", err)
			}
		})
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limits.SeedCandidates = 0

	if _, err := NewEngine(testCatalog(), cfg, zerolog.Nop()); err == nil {
		t.Error("NewEngine() with invalid config should fail")
	}
}

func TestNewEngine_DropsInvalidItems(t *testing.T) {
	t.Parallel()

	items := append(testCatalog(),
		NewItem("", "Action", 8, 10, "TV"),
		Item{Name: "Raw Item", Genre: "Comedy"},
		Item{Name: "Blank Genre", Genre: ""},
	)

	e := newTestEngine(t, items, nil)

	if got, want := e.Len(), len(testCatalog())+1; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got := e.Stats().Dropped; got != 2 {
		t.Errorf("Stats().Dropped = %d, want 2", got)
	}

	// Items built without NewItem get their tokens parsed.
	it, err := e.Lookup("Raw Item")
	if err != nil {
		t.Fatalf("Lookup(Raw Item) error = %v", err)
	}
	if len(it.GenreTokens) != 1 || it.GenreTokens[0] != "comedy" {
		t.Errorf("GenreTokens = %v, want [comedy]", it.GenreTokens)
	}
}

func TestNewEngine_DoesNotAliasConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	e := newTestEngine(t, testCatalog(), cfg)
	cfg.Limits.SeedResults = 40

	if got := e.Config().Limits.SeedResults; got != 5 {
		t.Errorf("Config().Limits.SeedResults = %d, want 5", got)
	}
}

func TestEngine_IdentityDistance(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testCatalog(), nil)
	for i, it := range e.items {
		res, err := e.index.Query(e.space.Transform(it.Genre), e.Len())
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		var self float64 = -1
		for _, n := range res {
			if n.Index == i {
				self = n.Distance
			}
		}
		if self < 0 || self > 1e-12 {
			t.Errorf("distance(%q, itself) = %v, want 0", it.Name, self)
		}
	}
}

func TestEngine_WordAnalyzer(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Encoder.Analyzer = encoder.AnalyzerWord
	cfg.Encoder.StopWords = true

	e := newTestEngine(t, testCatalog(), cfg)

	if e.Stats().Analyzer != "word" {
		t.Errorf("Stats().Analyzer = %q, want word", e.Stats().Analyzer)
	}

	// The overlap gate still uses comma-separated labels.
	res, err := e.RecommendSimilar(context.Background(), SimilarRequest{Title: "Steins;Gate"}, nil)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	for _, it := range res.Items {
		if !encoder.Overlaps(res.Seed.GenreTokens, it.GenreTokens) {
			t.Errorf("%q shares no genre label with the seed", it.Name)
		}
	}
}

func TestEngine_RecorderFailureDoesNotFailQuery(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testCatalog(), nil)
	rec := &memRecorder{err: errors.New("disk full")}

	if _, err := e.RecommendSimilar(context.Background(), SimilarRequest{Title: "Toradora!"}, rec); err != nil {
		t.Errorf("RecommendSimilar() error = %v, want nil", err)
	}
	if _, err := e.RecommendByGenre(context.Background(), GenreRequest{Genre: "Romance"}, rec); err != nil {
		t.Errorf("RecommendByGenre() error = %v, want nil", err)
	}
	if got := len(rec.all()); got != 2 {
		t.Errorf("recorded %d entries, want 2", got)
	}
}

func TestEngine_CanceledContext(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testCatalog(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.RecommendSimilar(ctx, SimilarRequest{Title: "Toradora!"}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("RecommendSimilar() error = %v, want context.Canceled", err)
	}
	if _, err := e.RecommendByGenre(ctx, GenreRequest{Genre: "Romance"}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("RecommendByGenre() error = %v, want context.Canceled", err)
	}
}

func TestEngine_ConcurrentQueries(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testCatalog(), nil)
	rec := &memRecorder{}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := context.Background()
			if i%2 == 0 {
				if _, err := e.RecommendSimilar(ctx, SimilarRequest{Title: "Code Geass"}, rec); err != nil {
					t.Errorf("RecommendSimilar() error = %v", err)
				}
				return
			}
			if _, err := e.RecommendByGenre(ctx, GenreRequest{Genre: "Action", SortBy: SortByMembers}, rec); err != nil {
				t.Errorf("RecommendByGenre() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := len(rec.all()); got != 20 {
		t.Errorf("recorded %d entries, want 20", got)
	}
}
