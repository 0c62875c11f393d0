// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package render

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/models"
)

// JSON writes views inside the standard API envelope.
type JSON struct{}

func (JSON) ContentType() string {
	return "application/json"
}

func (JSON) RenderList(w io.Writer, v ListView) error {
	resp := models.NewSuccess(ToAnimeList(v), v.QueryTime)
	resp.Metadata.Cached = v.Cached
	return json.NewEncoder(w).Encode(resp)
}

func (JSON) RenderDetail(w io.Writer, v DetailView) error {
	return json.NewEncoder(w).Encode(models.NewSuccess(ToAnimeDetail(v), v.QueryTime))
}
