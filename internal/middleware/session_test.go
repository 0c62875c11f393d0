// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSession(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string // "" means a generated UUID
	}{
		{name: "header", header: "alice", want: "alice"},
		{name: "cookie", cookie: "bob", want: "bob"},
		{name: "header wins over cookie", header: "alice", cookie: "bob", want: "alice"},
		{name: "malformed header falls back to cookie", header: "a:b", cookie: "bob", want: "bob"},
		{name: "nothing supplied"},
		{name: "malformed everything", header: "x:y", cookie: "z:w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxID string
			handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = SessionID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(SessionHeader)
			if got != ctxID {
				t.Errorf("header %q != context %q", got, ctxID)
			}
			if tt.want != "" && got != tt.want {
				t.Errorf("session = %q, want %q", got, tt.want)
			}
			if tt.want == "" {
				if _, err := uuid.Parse(got); err != nil {
					t.Errorf("session = %q, want generated UUID", got)
				}
			}

			cookies := rec.Result().Cookies()
			if len(cookies) != 1 || cookies[0].Name != SessionCookie || cookies[0].Value != got {
				t.Fatalf("cookies = %v, want %s=%s", cookies, SessionCookie, got)
			}
			if !cookies[0].HttpOnly {
				t.Error("session cookie is not HttpOnly")
			}
		})
	}
}
