// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/recommend/encoder"
)

// AllTypes is the type filter value that disables type filtering.
const AllTypes = "All"

// Item is one cleaned catalog row.
type Item struct {
	// Name is the title, used as the dedup key.
	Name string `json:"name"`

	// Genre is the raw comma-separated genre string.
	Genre string `json:"genre"`

	// GenreTokens is Genre split on commas, normalized and lowercased.
	GenreTokens []string `json:"-"`

	// Rating is the average user score.
	Rating float64 `json:"rating"`

	// Members is the community member count (popularity).
	Members int64 `json:"members"`

	// Type is the media type, e.g. "TV" or "Movie". May be empty.
	Type string `json:"type"`
}

// NewItem builds an Item and parses its genre tokens.
func NewItem(name, genre string, rating float64, members int64, typ string) Item {
	return Item{
		Name:        strings.TrimSpace(name),
		Genre:       genre,
		GenreTokens: encoder.ParseGenres(genre),
		Rating:      rating,
		Members:     members,
		Type:        strings.TrimSpace(typ),
	}
}

// Valid reports whether the item has a name and at least one genre token.
func (i Item) Valid() bool {
	return strings.TrimSpace(i.Name) != "" && len(i.GenreTokens) > 0
}

// Mode identifies the query mode that produced a history entry.
type Mode int

const (
	// ModeSimilar is seed-item mode.
	ModeSimilar Mode = iota
	// ModeGenre is genre-text mode.
	ModeGenre
)

// String returns the mode name used in logs, metrics and JSON.
func (m Mode) String() string {
	switch m {
	case ModeSimilar:
		return "similar"
	case ModeGenre:
		return "genre"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "similar":
		*m = ModeSimilar
	case "genre":
		*m = ModeGenre
	default:
		return fmt.Errorf("unknown mode %q", text)
	}
	return nil
}

// SortKey selects the attribute genre-text results are ranked by.
type SortKey string

const (
	// SortByRating ranks by rating, highest first.
	SortByRating SortKey = "rating"
	// SortByMembers ranks by member count, highest first.
	SortByMembers SortKey = "members"
)

// ParseSortKey maps user input to a SortKey. Empty input selects SortByRating.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByRating:
		return SortByRating, nil
	case SortByMembers:
		return SortByMembers, nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidRequest, s)
	}
}

// SimilarRequest is a seed-item query.
type SimilarRequest struct {
	// Title is the exact seed name, usually picked from ResolveTitle.
	Title string `json:"title"`

	// Type restricts results to one media type. Empty or AllTypes disables it.
	Type string `json:"type,omitempty"`

	// Limit is the number of results wanted. Zero selects the configured default.
	Limit int `json:"limit,omitempty"`
}

// SimilarResult is the outcome of a seed-item query.
type SimilarResult struct {
	Seed       Item   `json:"seed"`
	Type       string `json:"type"`
	Items      []Item `json:"items"`
	Found      int    `json:"found"`
	Requested  int    `json:"requested"`
	Candidates int    `json:"candidates"`
	Partial    bool   `json:"partial"`
}

// Err returns ErrPartialResult when fewer items than requested were found,
// nil otherwise. It is informational; Items is valid either way.
func (r *SimilarResult) Err() error {
	if r.Partial {
		return fmt.Errorf("%w: found %d of %d", ErrPartialResult, r.Found, r.Requested)
	}
	return nil
}

// GenreRequest is a genre-text query.
type GenreRequest struct {
	// Genre is the label to match, e.g. "Action".
	Genre string `json:"genre"`

	// SortBy selects the ranking attribute. Empty selects SortByRating.
	SortBy SortKey `json:"sort_by,omitempty"`

	// Limit is the number of results wanted. Zero selects the configured default.
	Limit int `json:"limit,omitempty"`
}

// GenreResult is the outcome of a genre-text query.
type GenreResult struct {
	Genre      string  `json:"genre"`
	SortBy     SortKey `json:"sort_by"`
	Items      []Item  `json:"items"`
	Matched    int     `json:"matched"`
	Candidates int     `json:"candidates"`
}

// HistoryEntry is one completed query handed to a Recorder.
type HistoryEntry struct {
	Query   string    `json:"query"`
	Mode    Mode      `json:"mode"`
	Results []Item    `json:"results"`
	At      time.Time `json:"at"`
}

// Recorder receives completed queries. Implementations must be safe for
// concurrent use if shared between goroutines.
type Recorder interface {
	Record(ctx context.Context, entry HistoryEntry) error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(ctx context.Context, entry HistoryEntry) error

// Record calls f(ctx, entry).
func (f RecorderFunc) Record(ctx context.Context, entry HistoryEntry) error {
	return f(ctx, entry)
}

// SimilarLabel formats the history label of a seed-item query.
func SimilarLabel(title, typ string) string {
	if typ == "" {
		typ = AllTypes
	}
	return fmt.Sprintf("%s (Type: %s)", title, typ)
}

// GenreLabel formats the history label of a genre-text query.
func GenreLabel(genre string) string {
	return "Genre: " + genre
}

// TermWeight is one vocabulary term and its inverse document frequency.
type TermWeight struct {
	Term string  `json:"term"`
	IDF  float64 `json:"idf"`
}

// Stats summarizes the loaded catalog.
type Stats struct {
	Items      int       `json:"items"`
	Vocabulary int       `json:"vocabulary"`
	Genres     int       `json:"genres"`
	Types      int       `json:"types"`
	Dropped    int       `json:"dropped"`
	Analyzer   string    `json:"analyzer"`
	BuiltAt    time.Time `json:"built_at"`
	BuildTime  string    `json:"build_time"`
}
