// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Text writes a plain console layout.
type Text struct{}

func (Text) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (Text) RenderList(w io.Writer, v ListView) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, v.Title)
	fmt.Fprintln(bw, strings.Repeat("=", len(v.Title)))
	if len(v.Items) == 0 {
		fmt.Fprintln(bw, "No titles found.")
	}
	for i, it := range v.Items {
		fmt.Fprintf(bw, "%2d. %s\n", i+1, it.Name)
		if line := textAttrs(it.Genre, it.Rating, it.Members, it.Type, v.Fields); line != "" {
			fmt.Fprintf(bw, "    %s\n", line)
		}
	}
	if v.Notice != "" {
		fmt.Fprintf(bw, "\n%s\n", v.Notice)
	}
	return bw.Flush()
}

func (Text) RenderDetail(w io.Writer, v DetailView) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, v.Item.Name)
	fmt.Fprintf(bw, "Genre: %s | Rating: %s\n", v.Item.Genre, formatRating(v.Item.Rating))
	fmt.Fprintf(bw, "Members: %s | Type: %s\n", formatCount(v.Item.Members), typeOrUnknown(v.Item.Type))
	return bw.Flush()
}

func textAttrs(genre string, rating float64, members int64, typ string, fields Field) string {
	var parts []string
	if fields.Has(FieldGenre) {
		parts = append(parts, "Genre: "+genre)
	}
	if fields.Has(FieldRating) {
		parts = append(parts, "Rating: "+formatRating(rating))
	}
	if fields.Has(FieldMembers) {
		parts = append(parts, "Members: "+formatCount(members))
	}
	if fields.Has(FieldType) {
		parts = append(parts, "Type: "+typeOrUnknown(typ))
	}
	return strings.Join(parts, " | ")
}

func typeOrUnknown(typ string) string {
	if typ == "" {
		return "Unknown"
	}
	return typ
}
