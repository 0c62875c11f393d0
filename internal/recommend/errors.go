// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"errors"

	"github.com/tomtom215/animerec/internal/recommend/encoder"
	"github.com/tomtom215/animerec/internal/recommend/index"
)

var (
	// ErrNotFound is returned when a title or genre label matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrPartialResult reports that filtering left fewer results than
	// requested. It is returned only by SimilarResult.Err.
	ErrPartialResult = errors.New("partial result")

	// ErrInvalidRequest is returned for malformed query parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyCatalog is returned by NewEngine when no valid items remain or
	// no vocabulary can be built.
	ErrEmptyCatalog = encoder.ErrEmptyCatalog

	// ErrInvalidK is returned when the pipeline asks the index for a
	// non-positive neighbor count.
	ErrInvalidK = index.ErrInvalidK
)
