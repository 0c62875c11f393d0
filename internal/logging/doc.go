// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package logging provides zerolog-based structured logging for Animerec.
//
// A single global logger is configured once at startup from the LOG_LEVEL,
// LOG_FORMAT and LOG_CALLER settings and shared by every package. JSON is the
// default output; console output is meant for development and the CLI.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Int("items", n).Msg("Catalog loaded")
//	logging.Error().Err(err).Str("path", path).Msg("Catalog reload failed")
//
// # Request Context
//
// The HTTP layer stores the request ID and the history session ID in the
// request context. Ctx attaches both to every event:
//
//	logging.Ctx(r.Context()).Info().Str("title", title).Msg("Similar titles served")
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for libraries that only speak slog,
// such as sutureslog in the supervisor tree:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger(logging.Logger())}
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
