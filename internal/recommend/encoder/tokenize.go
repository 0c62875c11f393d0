// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package encoder

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Analyzer selects how raw genre text is split into tokens.
type Analyzer string

const (
	// AnalyzerGenre splits on commas and keeps each trimmed label as one token.
	AnalyzerGenre Analyzer = "genre"

	// AnalyzerWord extracts runs of two or more letters, digits or underscores.
	AnalyzerWord Analyzer = "word"
)

// wordPattern matches the same tokens as the classic \b\w\w+\b word analyzer.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// ParseAnalyzer converts a configuration string into an Analyzer.
// An empty string selects AnalyzerGenre.
func ParseAnalyzer(s string) (Analyzer, error) {
	switch Analyzer(strings.ToLower(strings.TrimSpace(s))) {
	case "", AnalyzerGenre:
		return AnalyzerGenre, nil
	case AnalyzerWord:
		return AnalyzerWord, nil
	default:
		return "", fmt.Errorf("unknown analyzer %q (want genre or word)", s)
	}
}

// Tokens splits text according to the analyzer.
func (a Analyzer) Tokens(text string) []string {
	if a == AnalyzerWord {
		return wordPattern.FindAllString(Normalize(text), -1)
	}
	return ParseGenres(text)
}

// Normalize applies NFKC normalization, trims surrounding whitespace and
// lowercases the result.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// ParseGenres splits a raw genre field on commas and returns the normalized,
// non-empty labels in their original order. Duplicates are preserved.
//
//	ParseGenres("Action, Sci-Fi , ,Drama") // ["action", "sci-fi", "drama"]
func ParseGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := Normalize(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// TokenSet returns the distinct tokens as a set.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Overlaps reports whether the two token lists share at least one token.
func Overlaps(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := TokenSet(a)
	for _, t := range b {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
