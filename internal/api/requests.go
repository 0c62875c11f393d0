// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package api provides HTTP request validation structs with go-playground/validator tags.
// These structs are used to validate incoming API request parameters before processing.
//
// The query tag names the URL parameter and is used in validation messages.
// Besides the stock validator tags two custom ones are registered by the
// validation package:
//   - notblank: string must contain a non-space character
//   - sessionid: string must be a usable session identifier
package api

// ResolveParams represents the query parameters for /recommendations/resolve.
// A blank query is valid and matches nothing.
type ResolveParams struct {
	Query string `query:"q" validate:"max=200"`
}

// SimilarParams represents the query parameters for /recommendations/similar.
//
// Fields:
//   - Title: exact seed title, usually picked from /resolve
//   - Type: media type filter; empty or "All" disables it
//   - Limit: results wanted (0 selects the configured default)
//   - Format: output format
type SimilarParams struct {
	Title  string `query:"title" validate:"notblank,max=200"`
	Type   string `query:"type" validate:"max=50"`
	Limit  int    `query:"limit" validate:"min=0,max=1000"`
	Format string `query:"format" validate:"omitempty,oneof=json html text txt"`
}

// GenreParams represents the query parameters for /recommendations/genre.
type GenreParams struct {
	Genre  string `query:"genre" validate:"notblank,max=100"`
	Sort   string `query:"sort" validate:"omitempty,oneof=rating members"`
	Limit  int    `query:"limit" validate:"min=0,max=1000"`
	Format string `query:"format" validate:"omitempty,oneof=json html text txt"`
}

// TopParams represents the query parameters for /catalog/top.
type TopParams struct {
	By     string `query:"by" validate:"omitempty,oneof=rating members"`
	Limit  int    `query:"limit" validate:"min=0,max=1000"`
	Format string `query:"format" validate:"omitempty,oneof=json html text txt"`
}

// DetailParams represents the parameters for /catalog/items/{name}.
type DetailParams struct {
	Name   string `query:"name" validate:"notblank,max=200"`
	Format string `query:"format" validate:"omitempty,oneof=json html text txt"`
}

// HistoryParams represents the query parameters for /history.
type HistoryParams struct {
	Session string `query:"session" validate:"sessionid"`
	Limit   int    `query:"limit" validate:"min=0,max=100"`
}
