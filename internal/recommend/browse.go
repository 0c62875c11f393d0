// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

// TopByMembers returns the n most popular titles. n <= 0 selects the
// configured default. Ties keep catalog order.
func (e *Engine) TopByMembers(n int) []Item {
	return e.top(e.byMembers, n)
}

// TopByRating returns the n highest rated titles. n <= 0 selects the
// configured default. Ties keep catalog order.
func (e *Engine) TopByRating(n int) []Item {
	return e.top(e.byRating, n)
}

// Top dispatches to TopByMembers or TopByRating.
func (e *Engine) Top(key SortKey, n int) []Item {
	if key == SortByMembers {
		return e.TopByMembers(n)
	}
	return e.TopByRating(n)
}

func (e *Engine) top(order []int, n int) []Item {
	n = e.cfg.clampLimit(n, e.cfg.Limits.TopResults)
	if n > len(order) {
		n = len(order)
	}
	out := make([]Item, n)
	for i := 0; i < n; i++ {
		out[i] = e.items[order[i]]
	}
	return out
}

// Genres returns the distinct trimmed genre labels, sorted, in their
// original casing.
func (e *Engine) Genres() []string {
	out := make([]string, len(e.genres))
	copy(out, e.genres)
	return out
}

// Types returns the distinct non-empty media types, sorted. Callers building
// a selector prepend AllTypes.
func (e *Engine) Types() []string {
	out := make([]string, len(e.types))
	copy(out, e.types)
	return out
}

// Terms returns the fitted vocabulary in dimension order. Rare terms carry
// the highest IDF.
func (e *Engine) Terms() []TermWeight {
	vocab := e.space.Vocabulary()
	out := make([]TermWeight, len(vocab))
	for i, term := range vocab {
		idf, _ := e.space.IDF(term)
		out[i] = TermWeight{Term: term, IDF: idf}
	}
	return out
}

// Stats summarizes the loaded catalog.
func (e *Engine) Stats() Stats {
	return Stats{
		Items:      len(e.items),
		Vocabulary: e.space.Dim(),
		Genres:     len(e.genres),
		Types:      len(e.types),
		Dropped:    e.dropped,
		Analyzer:   string(e.space.Analyzer()),
		BuiltAt:    e.builtAt,
		BuildTime:  e.buildTime.String(),
	}
}
