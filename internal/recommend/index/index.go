// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package index provides exact nearest-neighbor search over encoder vectors.
//
// Index performs a brute-force linear scan using cosine distance. Catalogs
// are small (tens of thousands of titles at most) so an exact scan answers
// every query in bounded time without an approximate structure to tune.
//
// An Index is immutable after Build and safe for concurrent queries.
package index

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tomtom215/animerec/internal/recommend/encoder"
)

// ErrInvalidK is returned when a query asks for a non-positive neighbor count.
var ErrInvalidK = errors.New("invalid k: neighbor count must be positive")

// Neighbor is one query hit: the catalog position and its cosine distance.
type Neighbor struct {
	Index    int     `json:"index"`
	Distance float64 `json:"distance"`
}

// Index holds the catalog vectors and their precomputed norms.
type Index struct {
	vectors []encoder.Vector
	norms   []float64
}

// Build stores a copy of vectors. Position i in the index corresponds to
// position i in the slice.
func Build(vectors []encoder.Vector) *Index {
	idx := &Index{
		vectors: make([]encoder.Vector, len(vectors)),
		norms:   make([]float64, len(vectors)),
	}
	for i, v := range vectors {
		cp := make(encoder.Vector, len(v))
		copy(cp, v)
		idx.vectors[i] = cp
		idx.norms[i] = cp.Norm()
	}
	return idx
}

// Len returns the number of indexed vectors.
func (idx *Index) Len() int {
	return len(idx.vectors)
}

// Query returns the k nearest vectors to vec, closest first. Equal distances
// keep ascending catalog order. k larger than Len is clamped.
func (idx *Index) Query(vec encoder.Vector, k int) ([]Neighbor, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if k > len(idx.vectors) {
		k = len(idx.vectors)
	}

	qnorm := vec.Norm()
	hits := make([]Neighbor, len(idx.vectors))
	for i, v := range idx.vectors {
		hits[i] = Neighbor{
			Index:    i,
			Distance: distance(vec, v, qnorm, idx.norms[i]),
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})

	return hits[:k], nil
}

// CosineDistance returns 1 minus the cosine similarity of a and b, in [0, 2].
// A zero vector is treated as orthogonal to everything (distance 1).
func CosineDistance(a, b encoder.Vector) float64 {
	return distance(a, b, a.Norm(), b.Norm())
}

func distance(a, b encoder.Vector, na, nb float64) float64 {
	if na == 0 || nb == 0 {
		return 1
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}

	d := 1 - dot/(na*nb)
	switch {
	case d < 0:
		return 0
	case d > 2:
		return 2
	default:
		return d
	}
}
