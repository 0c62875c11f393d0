// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package render

import (
	"html/template"
	"io"
)

const htmlList = `<section class="anime-list">
<h2>{{.Title}}</h2>
{{- range .Items}}
<div class="anime-card">
  <div class="anime-header">{{.Name}}</div>
  <div class="anime-body">
    {{- if has $.Fields "genre"}}<span class="genre">Genre: {{.Genre}}</span><br>{{end}}
    {{- if has $.Fields "rating"}}<span class="rating">Rating: {{rating .Rating}}</span><br>{{end}}
    {{- if has $.Fields "members"}}<span class="members">Members: {{count .Members}}</span><br>{{end}}
    {{- if has $.Fields "type"}}<span class="type">Type: {{typeName .Type}}</span>{{end}}
  </div>
</div>
{{- else}}
<p class="empty">No titles found.</p>
{{- end}}
{{- if .Notice}}
<p class="notice">{{.Notice}}</p>
{{- end}}
</section>
`

const htmlDetail = `<div class="anime-card anime-detail">
  <div class="anime-header">{{.Item.Name}}</div>
  <div class="anime-body">
    <span class="genre">Genre: {{.Item.Genre}}</span> | <span class="rating">Rating: {{rating .Item.Rating}}</span><br>
    <span class="members">Members: {{count .Item.Members}}</span> | <span class="type">Type: {{typeName .Item.Type}}</span>
  </div>
</div>
`

var fieldNames = map[string]Field{
	"genre":   FieldGenre,
	"rating":  FieldRating,
	"members": FieldMembers,
	"type":    FieldType,
}

// HTML writes anime cards as an HTML fragment. Titles and genres are
// escaped by html/template.
type HTML struct {
	list   *template.Template
	detail *template.Template
}

// NewHTML parses the card templates.
func NewHTML() *HTML {
	funcs := template.FuncMap{
		"has": func(f Field, name string) bool {
			return f.Has(fieldNames[name])
		},
		"rating":   formatRating,
		"count":    formatCount,
		"typeName": typeOrUnknown,
	}
	return &HTML{
		list:   template.Must(template.New("list").Funcs(funcs).Parse(htmlList)),
		detail: template.Must(template.New("detail").Funcs(funcs).Parse(htmlDetail)),
	}
}

func (h *HTML) ContentType() string {
	return "text/html; charset=utf-8"
}

func (h *HTML) RenderList(w io.Writer, v ListView) error {
	return h.list.Execute(w, v)
}

func (h *HTML) RenderDetail(w io.Writer, v DetailView) error {
	return h.detail.Execute(w, v)
}
