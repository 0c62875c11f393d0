// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package recommend implements content-based anime recommendations from genre
// metadata.
//
// # Architecture
//
// The engine is strictly layered:
//
//   - encoder: genre strings to unit TF-IDF vectors over the catalog vocabulary
//   - index: exact cosine nearest-neighbor search over those vectors
//   - Engine: the query pipeline that turns raw neighbor lists into ranked,
//     deduplicated, filtered results
//
// # Query Modes
//
// Seed-item mode (RecommendSimilar) anchors on an existing title. It
// over-fetches neighbors, then walks them in distance order skipping the seed
// itself, names already accepted, titles of the wrong type and titles that
// share no genre label with the seed. Fewer results than requested is
// reported through SimilarResult.Partial, never as an error.
//
// Genre-text mode (RecommendByGenre) anchors on a genre label. Candidates are
// re-validated by literal (case-insensitive) containment of the label in the
// raw genre string and then re-ranked by rating or member count.
//
// # Lifecycle
//
// NewEngine fits the vocabulary and builds the index once. Nothing is mutated
// afterwards, so an Engine is shared across requests without locking. A
// catalog reload builds a new Engine and publishes it through a Holder.
//
// # Usage
//
//	engine, err := recommend.NewEngine(items, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	titles := engine.ResolveTitle("naruto")
//	res, err := engine.RecommendSimilar(ctx, recommend.SimilarRequest{
//	    Title: titles[0],
//	    Type:  "TV",
//	}, session)
//
// # History
//
// Every completed query is passed to the caller-supplied Recorder, typically
// a per-session history log. A nil Recorder disables recording. Recorder
// failures are logged and never fail the query.
//
// # Thread Safety
//
// Engine and Holder are safe for concurrent use. Results returned by the
// engine may be shared through the result cache and must be treated as
// read-only.
package recommend
