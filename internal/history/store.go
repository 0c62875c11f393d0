// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package history keeps a per-session log of recommendation queries and
// their results.
//
// Two backends are provided: MemoryStore (default, lost on restart) and
// BadgerStore (persistent, with optional TTL). Both are safe for concurrent
// use. A SessionLog binds a Store to one session and implements
// recommend.Recorder so it can be handed straight to the engine.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/validation"
)

// StoreType defines the type of history storage backend.
type StoreType string

const (
	// StoreMemory uses in-memory storage (default, not persistent).
	StoreMemory StoreType = "memory"

	// StoreBadger uses BadgerDB for persistent history storage.
	StoreBadger StoreType = "badger"
)

// ErrInvalidSession is returned for empty, oversized or malformed session IDs.
var ErrInvalidSession = errors.New("invalid session id")

// Record is the stored form of one recommended title.
type Record struct {
	Name    string  `json:"name"`
	Genre   string  `json:"genre"`
	Rating  float64 `json:"rating"`
	Members int64   `json:"members"`
	Type    string  `json:"type"`
}

// Item converts the record back into a catalog item.
func (r Record) Item() recommend.Item {
	return recommend.NewItem(r.Name, r.Genre, r.Rating, r.Members, r.Type)
}

// Entry is one logged query.
type Entry struct {
	Query   string         `json:"query"`
	Mode    recommend.Mode `json:"mode"`
	Results []Record       `json:"results"`
	At      time.Time      `json:"at"`
}

// Store persists history entries per session.
type Store interface {
	// Append adds an entry to the session's log.
	Append(ctx context.Context, session string, entry Entry) error

	// Recent returns up to n entries, newest first. n <= 0 returns all.
	Recent(ctx context.Context, session string, n int) ([]Entry, error)

	// Clear removes every entry of the session.
	Clear(ctx context.Context, session string) error

	// Name identifies the backend in logs and metrics.
	Name() string

	// Close releases backend resources.
	Close() error
}

// Config selects and tunes the history backend.
type Config struct {
	// Type is "memory" (default) or "badger".
	Type StoreType

	// Path is the BadgerDB directory. Required for badger unless InMemory.
	Path string

	// InMemory runs BadgerDB without touching disk. Used by tests.
	InMemory bool

	// MaxEntries caps entries kept per session; older entries are dropped.
	// Zero means unlimited.
	MaxEntries int

	// TTL expires BadgerDB entries after the given duration. Zero disables
	// expiry. Ignored by the memory store.
	TTL time.Duration
}

// NewStore creates a Store based on configuration.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Type {
	case "", StoreMemory:
		return NewMemoryStore(cfg.MaxEntries), nil
	case StoreBadger:
		return OpenBadgerStore(cfg)
	default:
		return nil, fmt.Errorf("unknown history store type %q", cfg.Type)
	}
}

// validateSession rejects IDs that cannot be used as key components.
func validateSession(session string) error {
	if !validation.IsIdentifier(session) {
		return fmt.Errorf("%w: %q", ErrInvalidSession, session)
	}
	return nil
}

// FromHistoryEntry converts an engine history entry into its stored form.
func FromHistoryEntry(e recommend.HistoryEntry) Entry {
	out := Entry{
		Query:   e.Query,
		Mode:    e.Mode,
		Results: make([]Record, len(e.Results)),
		At:      e.At,
	}
	for i, it := range e.Results {
		out.Results[i] = Record{
			Name:    it.Name,
			Genre:   it.Genre,
			Rating:  it.Rating,
			Members: it.Members,
			Type:    it.Type,
		}
	}
	if out.At.IsZero() {
		out.At = time.Now().UTC()
	}
	return out
}
