// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/validation"
)

const (
	// SessionHeader carries the history session ID.
	SessionHeader = "X-Session-ID"

	// SessionCookie is the cookie fallback for browsers.
	SessionCookie = "animerec_session"

	sessionCookieMaxAge = 30 * 24 * time.Hour
)

// Session resolves the history session for a request. The header wins over
// the cookie; a missing or malformed ID is replaced by a new UUID. The
// resolved ID is echoed in the response header and cookie.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionFromRequest(r)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(SessionHeader, id)
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   int(sessionCookieMaxAge.Seconds()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := logging.ContextWithSessionID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromRequest(r *http.Request) string {
	if id := r.Header.Get(SessionHeader); validation.IsIdentifier(id) {
		return id
	}
	if c, err := r.Cookie(SessionCookie); err == nil && validation.IsIdentifier(c.Value) {
		return c.Value
	}
	return ""
}

// SessionID returns the session resolved by Session, or "" outside it.
func SessionID(ctx context.Context) string {
	return logging.SessionIDFromContext(ctx)
}
