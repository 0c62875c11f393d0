// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package encoder

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyCatalog is returned by Fit when no vocabulary can be built.
var ErrEmptyCatalog = errors.New("empty catalog: no vocabulary to fit")

// Vector is a dense TF-IDF vector with one component per vocabulary term.
type Vector []float64

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Options controls how Fit tokenizes the corpus.
type Options struct {
	// Analyzer selects the tokenizer. Default: AnalyzerGenre.
	Analyzer Analyzer

	// StopWords removes the fixed English stop-word set before counting.
	StopWords bool
}

// VectorSpace is a fitted vocabulary with per-term IDF weights.
type VectorSpace struct {
	analyzer  Analyzer
	stopWords bool
	vocab     map[string]int
	terms     []string
	idf       []float64
	docs      int
}

// Fit builds a VectorSpace from the raw genre strings and returns the unit
// TF-IDF vector of every document, aligned with docs.
func Fit(docs []string, opts Options) (*VectorSpace, []Vector, error) {
	if len(docs) == 0 {
		return nil, nil, ErrEmptyCatalog
	}
	if opts.Analyzer == "" {
		opts.Analyzer = AnalyzerGenre
	}

	vs := &VectorSpace{
		analyzer:  opts.Analyzer,
		stopWords: opts.StopWords,
		docs:      len(docs),
	}

	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := vs.tokens(doc)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if !seen[t] {
				df[t]++
				seen[t] = true
			}
		}
	}
	if len(df) == 0 {
		return nil, nil, ErrEmptyCatalog
	}

	vs.terms = make([]string, 0, len(df))
	for t := range df {
		vs.terms = append(vs.terms, t)
	}
	sort.Strings(vs.terms)

	n := float64(len(docs))
	vs.vocab = make(map[string]int, len(vs.terms))
	vs.idf = make([]float64, len(vs.terms))
	for i, t := range vs.terms {
		vs.vocab[t] = i
		vs.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, tokens := range tokenized {
		vectors[i] = vs.project(tokens)
	}

	return vs, vectors, nil
}

// Transform parses text with the fitted analyzer and projects it into the
// space. Tokens missing from the vocabulary contribute nothing.
func (vs *VectorSpace) Transform(text string) Vector {
	return vs.project(vs.tokens(text))
}

// TransformTokens projects already-tokenized input. Tokens are used as given
// apart from stop-word removal.
func (vs *VectorSpace) TransformTokens(tokens []string) Vector {
	if !vs.stopWords {
		return vs.project(tokens)
	}
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !IsStopWord(t) {
			kept = append(kept, t)
		}
	}
	return vs.project(kept)
}

// Dim returns the number of dimensions (vocabulary size).
func (vs *VectorSpace) Dim() int {
	return len(vs.terms)
}

// Documents returns the number of documents the space was fitted on.
func (vs *VectorSpace) Documents() int {
	return vs.docs
}

// Analyzer returns the analyzer used for fitting and transforming.
func (vs *VectorSpace) Analyzer() Analyzer {
	return vs.analyzer
}

// Vocabulary returns a copy of the terms in dimension order.
func (vs *VectorSpace) Vocabulary() []string {
	out := make([]string, len(vs.terms))
	copy(out, vs.terms)
	return out
}

// IDF returns the inverse document frequency of token and whether it is part
// of the vocabulary.
func (vs *VectorSpace) IDF(token string) (float64, bool) {
	i, ok := vs.vocab[token]
	if !ok {
		return 0, false
	}
	return vs.idf[i], true
}

func (vs *VectorSpace) tokens(text string) []string {
	tokens := vs.analyzer.Tokens(text)
	if !vs.stopWords {
		return tokens
	}
	kept := tokens[:0]
	for _, t := range tokens {
		if !IsStopWord(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// project computes the L2-normalized TF-IDF vector for a token list.
func (vs *VectorSpace) project(tokens []string) Vector {
	v := make(Vector, len(vs.terms))
	for _, t := range tokens {
		if i, ok := vs.vocab[t]; ok {
			v[i]++
		}
	}

	var sum float64
	for i, tf := range v {
		if tf == 0 {
			continue
		}
		v[i] = tf * vs.idf[i]
		sum += v[i] * v[i]
	}
	if sum == 0 {
		return v
	}

	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return v
}
