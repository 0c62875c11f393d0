// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/animerec/internal/recommend/encoder"
)

func fitted(t *testing.T, docs []string) (*encoder.VectorSpace, []encoder.Vector) {
	t.Helper()
	vs, vectors, err := encoder.Fit(docs, encoder.Options{})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return vs, vectors
}

var corpus = []string{
	"Action, Adventure, Fantasy",
	"Action, Drama",
	"Comedy, Slice of Life",
	"Action, Adventure, Fantasy",
	"Romance, Drama",
	"Comedy, Romance, School",
	"Sci-Fi, Mecha",
}

func TestCosineDistance_Identity(t *testing.T) {
	t.Parallel()

	vs, vectors := fitted(t, corpus)
	for i, doc := range corpus {
		d := CosineDistance(vs.Transform(doc), vectors[i])
		if math.Abs(d) > 1e-12 {
			t.Errorf("CosineDistance(transform(%q), vectors[%d]) = %v, want 0", doc, i, d)
		}
	}
}

func TestCosineDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b encoder.Vector
		want float64
	}{
		{"identical", encoder.Vector{1, 0}, encoder.Vector{1, 0}, 0},
		{"scaled", encoder.Vector{2, 0}, encoder.Vector{5, 0}, 0},
		{"orthogonal", encoder.Vector{1, 0}, encoder.Vector{0, 1}, 1},
		{"opposite", encoder.Vector{1, 0}, encoder.Vector{-1, 0}, 2},
		{"zero query", encoder.Vector{0, 0}, encoder.Vector{1, 0}, 1},
		{"both zero", encoder.Vector{0, 0}, encoder.Vector{0, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CosineDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CosineDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestQuery_InvalidK(t *testing.T) {
	t.Parallel()

	_, vectors := fitted(t, corpus)
	idx := Build(vectors)

	for _, k := range []int{0, -1, -100} {
		res, err := idx.Query(vectors[0], k)
		if !errors.Is(err, ErrInvalidK) {
			t.Errorf("Query(k=%d) error = %v, want ErrInvalidK", k, err)
		}
		if res != nil {
			t.Errorf("Query(k=%d) returned %d neighbors, want nil", k, len(res))
		}
	}
}

func TestQuery_CountAndOrder(t *testing.T) {
	t.Parallel()

	vs, vectors := fitted(t, corpus)
	idx := Build(vectors)
	if idx.Len() != len(corpus) {
		t.Fatalf("Len() = %d, want %d", idx.Len(), len(corpus))
	}

	query := vs.Transform("Action, Drama")
	for k := 1; k <= len(corpus)+3; k++ {
		res, err := idx.Query(query, k)
		if err != nil {
			t.Fatalf("Query(k=%d) error = %v", k, err)
		}

		want := k
		if want > len(corpus) {
			want = len(corpus)
		}
		if len(res) != want {
			t.Errorf("Query(k=%d) returned %d, want %d", k, len(res), want)
		}

		for i := 1; i < len(res); i++ {
			if res[i].Distance < res[i-1].Distance {
				t.Errorf("Query(k=%d) not sorted at %d: %v < %v", k, i, res[i].Distance, res[i-1].Distance)
			}
			if res[i].Distance == res[i-1].Distance && res[i].Index < res[i-1].Index {
				t.Errorf("Query(k=%d) tie at %d not in catalog order", k, i)
			}
		}
	}
}

func TestQuery_NearestIsSelf(t *testing.T) {
	t.Parallel()

	vs, vectors := fitted(t, corpus)
	idx := Build(vectors)

	res, err := idx.Query(vs.Transform(corpus[1]), 1)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if res[0].Index != 1 {
		t.Errorf("nearest = %d, want 1", res[0].Index)
	}
}

func TestQuery_TiesKeepCatalogOrder(t *testing.T) {
	t.Parallel()

	// Items 0 and 3 share the same genre string, so their distance is equal.
	vs, vectors := fitted(t, corpus)
	idx := Build(vectors)

	res, err := idx.Query(vs.Transform("Action, Adventure, Fantasy"), 2)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if res[0].Index != 0 || res[1].Index != 3 {
		t.Errorf("tie order = [%d %d], want [0 3]", res[0].Index, res[1].Index)
	}
}

func TestQuery_ZeroVector(t *testing.T) {
	t.Parallel()

	vs, vectors := fitted(t, corpus)
	idx := Build(vectors)

	res, err := idx.Query(vs.Transform("Unknown Genre"), 3)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	for i, n := range res {
		if n.Distance != 1 {
			t.Errorf("res[%d].Distance = %v, want 1", i, n.Distance)
		}
		if n.Index != i {
			t.Errorf("res[%d].Index = %d, want %d", i, n.Index, i)
		}
	}
}

func TestBuild_CopiesVectors(t *testing.T) {
	t.Parallel()

	vectors := []encoder.Vector{{1, 0}, {0, 1}}
	idx := Build(vectors)
	vectors[0][0] = 0
	vectors[0][1] = 1

	res, err := idx.Query(encoder.Vector{1, 0}, 1)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if res[0].Index != 0 || res[0].Distance != 0 {
		t.Errorf("Query after caller mutation = %+v, want index 0 distance 0", res[0])
	}
}
