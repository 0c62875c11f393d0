// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/render"
	"github.com/tomtom215/animerec/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeBody(w, status, "application/json", data)
}

// writeBody writes an encoded body with caching headers.
// Only successful responses are cacheable.
func writeBody(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Vary", "Accept-Encoding")
	if status == http.StatusOK {
		w.Header().Set("Cache-Control", "private, max-age=60")
		w.Header().Set("ETag", generateETag(data))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data in the success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	resp := models.NewSuccess(data, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	resp := models.NewError(code, message, nil)
	respondJSON(w, status, &resp)
}

// respondAPIError sends a prepared APIError, keeping its details.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	resp := models.NewError(apiErr.Code, apiErr.Message, apiErr.Details)
	respondJSON(w, status, &resp)
}

// respondFailure maps err to a status and sends it. Client errors are logged
// at debug level, server errors at error level.
func respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusForError(err)
	logger := logging.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("request failed")
	} else {
		logger.Debug().
			Int("status", status).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("request rejected")
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	resp := models.NewError(code, message, nil)
	respondJSON(w, status, &resp)
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
//
// Example:
//
//	req := SimilarParams{Title: q.Get("title"), Limit: limit}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondAPIError(w, http.StatusBadRequest, apiErr)
//	    return
//	}
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return validationErr.ToAPIError()
}

// getIntParam extracts an integer query parameter. A missing parameter
// yields defaultValue; a malformed one yields ErrInvalidParam.
func getIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidParam, key)
	}
	return intValue, nil
}

// respondList renders a list view in the requested format.
func respondList(w http.ResponseWriter, r *http.Request, format string, v render.ListView) {
	renderer, err := render.ForFormat(format)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := renderer.RenderList(&buf, v); err != nil {
		respondFailure(w, r, fmt.Errorf("render list: %w", err))
		return
	}
	writeBody(w, http.StatusOK, renderer.ContentType(), buf.Bytes())
}

// respondDetail renders a detail view in the requested format.
func respondDetail(w http.ResponseWriter, r *http.Request, format string, v render.DetailView) {
	renderer, err := render.ForFormat(format)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := renderer.RenderDetail(&buf, v); err != nil {
		respondFailure(w, r, fmt.Errorf("render detail: %w", err))
		return
	}
	writeBody(w, http.StatusOK, renderer.ContentType(), buf.Bytes())
}
