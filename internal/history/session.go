// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package history

import (
	"context"
	"fmt"

	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

const (
	// DefaultQueries is the number of past queries shown by default.
	DefaultQueries = 10

	// DefaultRecommendations is the number of past result sets shown by default.
	DefaultRecommendations = 5
)

// SessionLog is the history of one session. It implements recommend.Recorder.
type SessionLog struct {
	store   Store
	session string
}

// compile-time check
var _ recommend.Recorder = (*SessionLog)(nil)

// ForSession binds store to one session.
func ForSession(store Store, session string) *SessionLog {
	return &SessionLog{store: store, session: session}
}

// ID returns the session identifier.
func (l *SessionLog) ID() string {
	return l.session
}

// Record appends a completed query to the session's log.
func (l *SessionLog) Record(ctx context.Context, entry recommend.HistoryEntry) error {
	if err := l.store.Append(ctx, l.session, FromHistoryEntry(entry)); err != nil {
		metrics.HistoryAppendErrors.WithLabelValues(l.store.Name()).Inc()
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Queries returns the labels of the last n queries, newest first.
// n <= 0 selects DefaultQueries.
func (l *SessionLog) Queries(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		n = DefaultQueries
	}
	entries, err := l.store.Recent(ctx, l.session, n)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Query
	}
	return out, nil
}

// Recommendations returns the last n result sets, newest first.
// n <= 0 selects DefaultRecommendations.
func (l *SessionLog) Recommendations(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = DefaultRecommendations
	}
	return l.store.Recent(ctx, l.session, n)
}

// Clear removes the session's history.
func (l *SessionLog) Clear(ctx context.Context) error {
	return l.store.Clear(ctx, l.session)
}
