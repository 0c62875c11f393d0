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

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestNewItem(t *testing.T) {
	it := NewItem("Cowboy Bebop", "Action, Adventure, Sci-Fi", 8.82, 486824, "TV")

	want := []string{"action", "adventure", "sci-fi"}
	if len(it.GenreTokens) != len(want) {
		t.Fatalf("GenreTokens = %v, want %v", it.GenreTokens, want)
	}
	for i := range want {
		if it.GenreTokens[i] != want[i] {
			t.Errorf("GenreTokens[%d] = %q, want %q", i, it.GenreTokens[i], want[i])
		}
	}
	if !it.Valid() {
		t.Error("Valid() = false, want true")
	}
}

func TestItemValid(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"complete", NewItem("A", "Action", 1, 1, "TV"), true},
		{"missing type is fine", NewItem("A", "Action", 1, 1, ""), true},
		{"blank name", NewItem("  ", "Action", 1, 1, "TV"), false},
		{"no tokens", NewItem("A", ",,", 1, 1, "TV"), false},
	}

	for _, tt := range tests {
		if got := tt.item.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModeText(t *testing.T) {
	for _, m := range []Mode{ModeSimilar, ModeGenre} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", m, err)
		}
		var back Mode
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if back != m {
			t.Errorf("round trip %v -> %q -> %v", m, text, back)
		}
	}

	var m Mode
	if err := m.UnmarshalText([]byte("popular")); err == nil {
		t.Error("UnmarshalText(popular) should fail")
	}
	if Mode(9).String() != "unknown" {
		t.Errorf("Mode(9).String() = %q, want unknown", Mode(9).String())
	}
}

func TestHistoryEntryJSON(t *testing.T) {
	entry := HistoryEntry{Query: "Genre: Action", Mode: ModeGenre}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["mode"] != "genre" {
		t.Errorf("mode = %v, want genre", decoded["mode"])
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{SimilarLabel("Naruto", ""), "Naruto (Type: All)"},
		{SimilarLabel("Naruto", "TV"), "Naruto (Type: TV)"},
		{GenreLabel("Action"), "Genre: Action"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("label = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestRecorderFunc(t *testing.T) {
	var called bool
	rec := RecorderFunc(func(_ context.Context, e HistoryEntry) error {
		called = e.Query == "q"
		return nil
	})

	if err := rec.Record(context.Background(), HistoryEntry{Query: "q"}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if !called {
		t.Error("RecorderFunc was not invoked with the entry")
	}
}

func TestHolder(t *testing.T) {
	if NewHolder(nil).Load() != nil {
		t.Error("empty Holder should load nil")
	}

	first, err := NewEngine([]Item{NewItem("A", "Action", 1, 1, "TV")}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	second, err := NewEngine([]Item{NewItem("B", "Drama", 1, 1, "TV")}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	h := NewHolder(first)
	if h.Load() != first {
		t.Error("Load() should return the initial engine")
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if e := h.Load(); e == nil || e.Len() != 1 {
				t.Error("Load() returned an unusable engine during swap")
			}
		}()
	}

	if old := h.Swap(second); old != first {
		t.Error("Swap() should return the previous engine")
	}
	wg.Wait()

	if h.Load() != second {
		t.Error("Load() should return the swapped engine")
	}
	if h.Swaps() != 1 {
		t.Errorf("Swaps() = %d, want 1", h.Swaps())
	}

	if _, err := h.Load().Lookup("A"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(A) on new engine error = %v, want ErrNotFound", err)
	}
}

func TestHolder_SwapPurgesCaches(t *testing.T) {
	first, err := NewEngine(testCatalog(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	second, err := NewEngine(testCatalog(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	ctx := context.Background()
	if _, err := first.RecommendByGenre(ctx, GenreRequest{Genre: "Drama"}, nil); err != nil {
		t.Fatalf("RecommendByGenre() error = %v", err)
	}
	if _, err := first.RecommendSimilar(ctx, SimilarRequest{Title: "Clannad"}, nil); err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if first.genreCache.Len() != 1 || first.similarCache.Len() != 1 {
		t.Fatalf("cache sizes = %d/%d, want 1/1", first.genreCache.Len(), first.similarCache.Len())
	}

	h := NewHolder(first)
	h.Swap(second)

	if first.genreCache.Len() != 0 || first.similarCache.Len() != 0 {
		t.Errorf("retired engine cache sizes = %d/%d, want 0/0", first.genreCache.Len(), first.similarCache.Len())
	}

	// Swapping in the active engine keeps its cache.
	if _, err := second.RecommendByGenre(ctx, GenreRequest{Genre: "Drama"}, nil); err != nil {
		t.Fatalf("RecommendByGenre() error = %v", err)
	}
	h.Swap(second)
	if second.genreCache.Len() != 1 {
		t.Errorf("active engine cache size = %d, want 1", second.genreCache.Len())
	}
}
