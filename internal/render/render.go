// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package render presents recommendation results.
//
// A Renderer turns a ListView or DetailView into bytes for one output format.
// Three adapters are provided: JSON (the API envelope), Text (console layout
// used by the CLI) and HTML (cards rendered with html/template). The query
// pipeline knows nothing about presentation; callers build a view from a
// result and hand it to whichever Renderer the client asked for.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Field selects which item attributes a list shows besides the name.
type Field uint8

const (
	FieldGenre Field = 1 << iota
	FieldRating
	FieldMembers
	FieldType
)

// Has reports whether f includes all of g.
func (f Field) Has(g Field) bool {
	return f&g == g
}

// Field sets used by the query modes.
const (
	SimilarFields = FieldGenre | FieldRating | FieldType
	GenreFields   = FieldGenre | FieldRating | FieldMembers | FieldType
	TopFields     = FieldGenre | FieldRating | FieldMembers
)

// ErrUnknownFormat is returned by ForFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// ListView is an ordered list of titles with a heading.
type ListView struct {
	Title     string
	Items     []recommend.Item
	Fields    Field
	Found     int
	Requested int
	Partial   bool
	Notice    string
	QueryTime time.Duration
	Cached    bool
}

// DetailView is a single title.
type DetailView struct {
	Item      recommend.Item
	QueryTime time.Duration
}

// Renderer writes views in one output format.
type Renderer interface {
	// ContentType is the HTTP Content-Type of the output.
	ContentType() string

	// RenderList writes an ordered list of titles.
	RenderList(w io.Writer, v ListView) error

	// RenderDetail writes a single title.
	RenderDetail(w io.Writer, v DetailView) error
}

// Formats lists the names accepted by ForFormat.
var Formats = []string{"json", "html", "text"}

// ForFormat returns the renderer for a format name. An empty name selects JSON.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return JSON{}, nil
	case "html":
		return NewHTML(), nil
	case "text", "txt":
		return Text{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SimilarView builds the view for a seed-item result.
func SimilarView(res *recommend.SimilarResult) ListView {
	title := "Recommendations based on the genres of " + res.Seed.Name
	if res.Type != "" && res.Type != recommend.AllTypes {
		title += " (Type: " + res.Type + ")"
	}
	v := ListView{
		Title:     title,
		Items:     res.Items,
		Fields:    SimilarFields,
		Found:     res.Found,
		Requested: res.Requested,
		Partial:   res.Partial,
	}
	if res.Partial {
		v.Notice = fmt.Sprintf("Only found %d titles sharing at least one genre.", res.Found)
	}
	return v
}

// GenreView builds the view for a genre-text result.
func GenreView(res *recommend.GenreResult) ListView {
	return ListView{
		Title:  fmt.Sprintf("Recommendations for genre '%s' by %s", res.Genre, res.SortBy),
		Items:  res.Items,
		Fields: GenreFields,
		Found:  len(res.Items),
	}
}

// TopView builds the view for a top list.
func TopView(title string, items []recommend.Item) ListView {
	return ListView{
		Title:  title,
		Items:  items,
		Fields: TopFields,
		Found:  len(items),
	}
}

// ToAnime converts an item, keeping only the selected fields.
func ToAnime(it recommend.Item, fields Field) models.Anime {
	a := models.Anime{Name: it.Name}
	if fields.Has(FieldGenre) {
		a.Genre = it.Genre
	}
	if fields.Has(FieldRating) {
		r := it.Rating
		a.Rating = &r
	}
	if fields.Has(FieldMembers) {
		m := it.Members
		a.Members = &m
	}
	if fields.Has(FieldType) {
		a.Type = it.Type
	}
	return a
}

// ToAnimeList converts a list view to its API model.
func ToAnimeList(v ListView) models.AnimeList {
	items := make([]models.Anime, len(v.Items))
	for i, it := range v.Items {
		items[i] = ToAnime(it, v.Fields)
	}
	return models.AnimeList{
		Title:     v.Title,
		Items:     items,
		Found:     v.Found,
		Requested: v.Requested,
		Partial:   v.Partial,
		Notice:    v.Notice,
	}
}

// ToAnimeDetail converts a detail view to its API model.
func ToAnimeDetail(v DetailView) models.AnimeDetail {
	genres := make([]string, 0, len(v.Item.GenreTokens))
	for _, g := range strings.Split(v.Item.Genre, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return models.AnimeDetail{
		Anime:  ToAnime(v.Item, GenreFields),
		Genres: genres,
	}
}

// formatRating prints a rating without trailing zeros.
func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// formatCount adds thousands separators.
func formatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
