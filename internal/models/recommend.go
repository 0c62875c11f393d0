// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package models

import "time"

// Anime is one title as returned by the API. Fields that a view does not
// show are omitted.
type Anime struct {
	Name    string   `json:"name"`
	Genre   string   `json:"genre,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
	Members *int64   `json:"members,omitempty"`
	Type    string   `json:"type,omitempty"`
}

// AnimeList is a titled, ordered list of titles.
type AnimeList struct {
	Title     string  `json:"title"`
	Items     []Anime `json:"items"`
	Found     int     `json:"found"`
	Requested int     `json:"requested,omitempty"`
	Partial   bool    `json:"partial,omitempty"`
	Notice    string  `json:"notice,omitempty"`
}

// AnimeDetail is a single title with its genre breakdown.
type AnimeDetail struct {
	Anime
	Genres []string `json:"genres"`
}

// ResolveResponse lists catalog titles matching a partial query.
type ResolveResponse struct {
	Query   string   `json:"query"`
	Matches []string `json:"matches"`
}

// HistoryQuery is one logged query with its results.
type HistoryQuery struct {
	Query   string    `json:"query"`
	Mode    string    `json:"mode"`
	At      time.Time `json:"at"`
	Results []Anime   `json:"results"`
}

// HistoryResponse is the session's recent activity, newest first.
type HistoryResponse struct {
	Session         string         `json:"session"`
	Queries         []string       `json:"queries"`
	Recommendations []HistoryQuery `json:"recommendations"`
}

// CatalogStats summarizes the loaded catalog.
type CatalogStats struct {
	Items      int          `json:"items"`
	Vocabulary int          `json:"vocabulary"`
	Genres     int          `json:"genres"`
	Types      int          `json:"types"`
	Dropped    int          `json:"dropped"`
	Analyzer   string       `json:"analyzer"`
	BuiltAt    time.Time    `json:"built_at"`
	BuildTime  string       `json:"build_time"`
	Reloads    int64        `json:"reloads"`
	Terms      []TermWeight `json:"terms"`
}

// TermWeight is a genre vocabulary term with its IDF weight.
type TermWeight struct {
	Term string  `json:"term"`
	IDF  float64 `json:"idf"`
}

// HealthStatus reports service health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	CatalogItems  int     `json:"catalog_items"`
	HistoryStore  string  `json:"history_store"`
	Uptime        float64 `json:"uptime_seconds"`
}
