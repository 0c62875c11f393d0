// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package history

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

func TestSessionLog_RecordsEngineQueries(t *testing.T) {
	engine, err := recommend.NewEngine([]recommend.Item{
		recommend.NewItem("X", "Action, Drama", 8.0, 100, "TV"),
		recommend.NewItem("Y", "Action", 7.0, 50, "TV"),
		recommend.NewItem("Z", "Romance", 9.0, 10, "Movie"),
	}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	log := ForSession(NewMemoryStore(0), "session-1")
	ctx := context.Background()

	if _, err := engine.RecommendSimilar(ctx, recommend.SimilarRequest{Title: "X"}, log); err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if _, err := engine.RecommendByGenre(ctx, recommend.GenreRequest{Genre: "Action"}, log); err != nil {
		t.Fatalf("RecommendByGenre() error = %v", err)
	}

	got, err := log.Queries(ctx, 0)
	if err != nil {
		t.Fatalf("Queries() error = %v", err)
	}
	want := []string{"Genre: Action", "X (Type: All)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Queries() = %v, want %v", got, want)
	}

	recs, err := log.Recommendations(ctx, 1)
	if err != nil {
		t.Fatalf("Recommendations() error = %v", err)
	}
	if len(recs) != 1 || recs[0].Mode != recommend.ModeGenre {
		t.Fatalf("Recommendations(1) = %+v, want one genre entry", recs)
	}
	if names := []string{recs[0].Results[0].Name, recs[0].Results[1].Name}; !reflect.DeepEqual(names, []string{"X", "Y"}) {
		t.Errorf("genre results = %v, want [X Y] by rating", names)
	}
}

func TestSessionLog_Defaults(t *testing.T) {
	log := ForSession(NewMemoryStore(0), "s")
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if err := log.Record(ctx, recommend.HistoryEntry{Query: fmt.Sprintf("q%d", i)}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	q, err := log.Queries(ctx, 0)
	if err != nil {
		t.Fatalf("Queries() error = %v", err)
	}
	if len(q) != DefaultQueries {
		t.Errorf("Queries(0) returned %d, want %d", len(q), DefaultQueries)
	}
	if q[0] != "q11" {
		t.Errorf("Queries(0)[0] = %q, want q11", q[0])
	}

	r, err := log.Recommendations(ctx, 0)
	if err != nil {
		t.Fatalf("Recommendations() error = %v", err)
	}
	if len(r) != DefaultRecommendations {
		t.Errorf("Recommendations(0) returned %d, want %d", len(r), DefaultRecommendations)
	}

	if err := log.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if q, _ := log.Queries(ctx, 0); len(q) != 0 {
		t.Errorf("Queries() after Clear = %v, want empty", q)
	}
	if log.ID() != "s" {
		t.Errorf("ID() = %q, want s", log.ID())
	}
}

func TestSessionLog_RecordErrorCountsMetric(t *testing.T) {
	log := ForSession(NewMemoryStore(0), "bad:session")
	before := testutil.ToFloat64(metrics.HistoryAppendErrors.WithLabelValues("memory"))

	err := log.Record(context.Background(), recommend.HistoryEntry{Query: "q"})
	if !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Record() error = %v, want ErrInvalidSession", err)
	}
	if got := testutil.ToFloat64(metrics.HistoryAppendErrors.WithLabelValues("memory")); got != before+1 {
		t.Errorf("history_append_errors_total = %v, want %v", got, before+1)
	}
}

func TestFromHistoryEntry(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got := FromHistoryEntry(recommend.HistoryEntry{
		Query:   "Genre: Action",
		Mode:    recommend.ModeGenre,
		Results: []recommend.Item{recommend.NewItem("A", "Action", 9, 10, "TV")},
		At:      at,
	})

	want := Entry{
		Query:   "Genre: Action",
		Mode:    recommend.ModeGenre,
		Results: []Record{{Name: "A", Genre: "Action", Rating: 9, Members: 10, Type: "TV"}},
		At:      at,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromHistoryEntry() = %+v, want %+v", got, want)
	}

	if FromHistoryEntry(recommend.HistoryEntry{}).At.IsZero() {
		t.Error("zero At should be stamped")
	}
}
