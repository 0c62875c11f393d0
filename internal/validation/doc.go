// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package validation validates HTTP query parameters with go-playground/validator v10.
//
// A single validator instance is built lazily and shared; it caches struct
// metadata, so every request type pays the reflection cost once. Field names
// in errors come from the `query` struct tag, so a failure reads
// "limit must be at most 50" rather than naming the Go field.
//
// # Custom Tags
//
//   - notblank: string must contain a non-space character
//   - sessionid: 1-128 printable characters without ':'
//
// # Usage
//
//	type GenreParams struct {
//	    Genre string `query:"genre" validate:"notblank,max=100"`
//	    Sort  string `query:"sort"  validate:"omitempty,oneof=rating members"`
//	    Limit int    `query:"limit" validate:"min=0,max=50"`
//	}
//
//	if verr := validation.ValidateStruct(&params); verr != nil {
//	    apiErr := verr.ToAPIError() // Code: VALIDATION_ERROR
//	}
package validation
