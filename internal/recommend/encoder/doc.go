// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package encoder turns genre metadata into TF-IDF vectors.
//
// # Model
//
// Fit builds a VectorSpace from every genre string in the catalog:
//
//   - Vocabulary: every distinct token, assigned dimensions in sorted order
//   - IDF: smooth inverse document frequency, ln((1+n)/(1+df)) + 1
//   - Vectors: raw term counts weighted by IDF, scaled to unit L2 length
//
// The VectorSpace is immutable once built. Transform projects new text into
// the same dimensions without refitting; tokens outside the vocabulary carry
// no weight, so an entirely unknown genre produces the zero vector.
//
// # Analyzers
//
// Two analyzers are available:
//
//   - AnalyzerGenre (default): comma-separated genre labels ("Slice of Life")
//   - AnalyzerWord: word tokens of two or more characters ("slice", "of", "life")
//
// Both apply Unicode NFKC normalization and lowercase the text before
// tokenizing. ParseGenres is exported separately because callers use the
// comma-split label set for exact overlap checks regardless of the analyzer.
//
// # Thread Safety
//
// A fitted VectorSpace is read-only and safe for concurrent Transform calls.
package encoder
