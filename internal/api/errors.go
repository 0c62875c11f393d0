// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// errors.go - Common API error definitions and their HTTP mapping
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/animerec/internal/history"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/render"
)

// Common API errors
var (
	// ErrCatalogNotLoaded indicates no engine has been published yet
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// ErrInvalidParam indicates a query parameter could not be parsed
	ErrInvalidParam = errors.New("invalid parameter")
)

// statusForError maps engine and API errors to an HTTP status and error code.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		return http.StatusNotFound, models.ErrCodeNotFound
	case errors.Is(err, recommend.ErrInvalidRequest), errors.Is(err, render.ErrUnknownFormat):
		return http.StatusBadRequest, models.ErrCodeValidation
	case errors.Is(err, ErrInvalidParam), errors.Is(err, history.ErrInvalidSession):
		return http.StatusBadRequest, models.ErrCodeBadRequest
	case errors.Is(err, ErrCatalogNotLoaded), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, models.ErrCodeServiceUnavailable
	default:
		return http.StatusInternalServerError, models.ErrCodeInternal
	}
}
