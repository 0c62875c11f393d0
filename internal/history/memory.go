// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package history

import (
	"context"
	"sync"
)

// MemoryStore keeps history in process memory.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string][]Entry
	maxEntries int
}

// NewMemoryStore creates an in-memory store keeping at most maxEntries per
// session (zero means unlimited).
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string][]Entry),
		maxEntries: maxEntries,
	}
}

// Append adds an entry to the session's log.
func (s *MemoryStore) Append(ctx context.Context, session string, entry Entry) error {
	if err := validateSession(session); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.sessions[session], entry)
	if s.maxEntries > 0 && len(entries) > s.maxEntries {
		trimmed := make([]Entry, s.maxEntries)
		copy(trimmed, entries[len(entries)-s.maxEntries:])
		entries = trimmed
	}
	s.sessions[session] = entries
	return nil
}

// Recent returns up to n entries, newest first.
func (s *MemoryStore) Recent(ctx context.Context, session string, n int) ([]Entry, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.sessions[session]
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}

	out := make([]Entry, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// Clear removes every entry of the session.
func (s *MemoryStore) Clear(ctx context.Context, session string) error {
	if err := validateSession(session); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, session)
	s.mu.Unlock()
	return nil
}

// Sessions returns the number of sessions with at least one entry.
func (s *MemoryStore) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Name returns "memory".
func (s *MemoryStore) Name() string {
	return string(StoreMemory)
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
