// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package history

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// historyKeyPrefix namespaces history keys: history:<session>:<seq>.
const historyKeyPrefix = "history:"

// BadgerStore is a BadgerDB-backed history store.
type BadgerStore struct {
	db         *badger.DB
	ttl        time.Duration
	maxEntries int

	// lastSeq keeps sequence numbers strictly increasing within the process.
	lastSeq atomic.Int64
}

// OpenBadgerStore opens (or creates) a BadgerDB for history.
func OpenBadgerStore(cfg Config) (*BadgerStore, error) {
	var opts badger.Options
	switch {
	case cfg.InMemory:
		opts = badger.DefaultOptions("").WithInMemory(true)
	case cfg.Path == "":
		return nil, errors.New("history store path is required for badger")
	default:
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for history: %w", err)
	}
	return NewBadgerStoreFromDB(db, cfg), nil
}

// NewBadgerStoreFromDB creates a BadgerStore from an existing DB connection.
// The store takes ownership of db and closes it on Close.
func NewBadgerStoreFromDB(db *badger.DB, cfg Config) *BadgerStore {
	return &BadgerStore{
		db:         db,
		ttl:        cfg.TTL,
		maxEntries: cfg.MaxEntries,
	}
}

func sessionPrefix(session string) []byte {
	return []byte(historyKeyPrefix + session + ":")
}

// nextSeq returns a strictly increasing sequence seeded from wall-clock
// nanoseconds, so keys sort chronologically across restarts.
func (s *BadgerStore) nextSeq() int64 {
	for {
		last := s.lastSeq.Load()
		next := time.Now().UnixNano()
		if next <= last {
			next = last + 1
		}
		if s.lastSeq.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Append stores the entry and trims the session to MaxEntries.
func (s *BadgerStore) Append(ctx context.Context, session string, entry Entry) error {
	if err := validateSession(session); err != nil {
		return err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	prefix := sessionPrefix(session)
	key := []byte(fmt.Sprintf("%s%020d", prefix, s.nextSeq()))

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = s.appendTxn(key, prefix, data)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("append history after %d attempts: %w", maxConflictRetries, err)
}

// maxConflictRetries bounds retries when concurrent trims touch the same session.
const maxConflictRetries = 5

func (s *BadgerStore) appendTxn(key, prefix, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set history entry: %w", err)
		}

		if s.maxEntries <= 0 {
			return nil
		}
		return trimSession(txn, prefix, s.maxEntries)
	})
}

// trimSession deletes the oldest keys under prefix beyond keep.
func trimSession(txn *badger.Txn, prefix []byte, keep int) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Reverse = true
	it := txn.NewIterator(opts)

	var stale [][]byte
	count := 0
	for it.Seek(seekEnd(prefix)); it.ValidForPrefix(prefix); it.Next() {
		count++
		if count > keep {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
	}
	it.Close()

	for _, k := range stale {
		if err := txn.Delete(k); err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
	}
	return nil
}

// seekEnd returns a key sorting after every key with prefix, for reverse
// iteration.
func seekEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix)+1)
	copy(end, prefix)
	end[len(prefix)] = 0xFF
	return end
}

// Recent returns up to n entries, newest first.
func (s *BadgerStore) Recent(ctx context.Context, session string, n int) ([]Entry, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	var entries []Entry
	prefix := sessionPrefix(session)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(seekEnd(prefix)); it.ValidForPrefix(prefix); it.Next() {
			if n > 0 && len(entries) >= n {
				break
			}
			var entry Entry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				return fmt.Errorf("unmarshal history entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return entries, nil
}

// Clear removes every entry of the session.
func (s *BadgerStore) Clear(ctx context.Context, session string) error {
	if err := validateSession(session); err != nil {
		return err
	}
	prefix := sessionPrefix(session)
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan history: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Name returns "badger".
func (s *BadgerStore) Name() string {
	return string(StoreBadger)
}

// Close closes the underlying BadgerDB.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
