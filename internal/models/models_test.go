// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestNewSuccess(t *testing.T) {
	t.Parallel()

	resp := NewSuccess(ResolveResponse{Query: "naru", Matches: []string{"Naruto"}}, 42*time.Millisecond)
	if resp.Status != "success" {
		t.Errorf("Status = %q, want success", resp.Status)
	}
	if resp.Error != nil {
		t.Errorf("Error = %+v, want nil", resp.Error)
	}
	if resp.Metadata.QueryTimeMS != 42 {
		t.Errorf("QueryTimeMS = %d, want 42", resp.Metadata.QueryTimeMS)
	}
	if resp.Metadata.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestNewError(t *testing.T) {
	t.Parallel()

	resp := NewError(ErrCodeValidation, "bad limit", map[string]interface{}{"field": "limit"})
	if resp.Status != "error" {
		t.Errorf("Status = %q, want error", resp.Status)
	}
	if resp.Data != nil {
		t.Errorf("Data = %v, want nil", resp.Data)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeValidation || resp.Error.Details["field"] != "limit" {
		t.Errorf("Error = %+v", resp.Error)
	}
}

func TestAnime_OmitsUnselectedFields(t *testing.T) {
	t.Parallel()

	rating := 8.45
	tests := []struct {
		name    string
		anime   Anime
		want    []string
		wantNot []string
	}{
		{
			name:    "name only",
			anime:   Anime{Name: "Toradora!"},
			want:    []string{`"name":"Toradora!"`},
			wantNot: []string{"genre", "rating", "members", "type"},
		},
		{
			name:    "rating kept at zero members",
			anime:   Anime{Name: "Toradora!", Rating: &rating, Type: "TV"},
			want:    []string{`"rating":8.45`, `"type":"TV"`},
			wantNot: []string{"members", "genre"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(tt.anime)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			s := string(data)
			for _, w := range tt.want {
				if !strings.Contains(s, w) {
					t.Errorf("%s missing %s", s, w)
				}
			}
			for _, w := range tt.wantNot {
				if strings.Contains(s, `"`+w+`"`) {
					t.Errorf("%s contains %s", s, w)
				}
			}
		})
	}
}

func TestAnimeDetail_FlattensAnime(t *testing.T) {
	t.Parallel()

	d := AnimeDetail{
		Anime:  Anime{Name: "Clannad", Genre: "Drama, Romance"},
		Genres: []string{"Drama", "Romance"},
	}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var flat map[string]interface{}
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if flat["name"] != "Clannad" {
		t.Errorf("name = %v, want Clannad", flat["name"])
	}
	if _, nested := flat["Anime"]; nested {
		t.Error("embedded Anime encoded as a nested object")
	}
	if genres, ok := flat["genres"].([]interface{}); !ok || len(genres) != 2 {
		t.Errorf("genres = %v, want 2 labels", flat["genres"])
	}
}
