// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import "sync/atomic"

// Holder publishes the active Engine. Readers always observe a fully built
// engine; a reload swaps in a new one without blocking queries.
type Holder struct {
	engine atomic.Pointer[Engine]
	swaps  atomic.Int64
}

// NewHolder returns a Holder serving e, which may be nil until the first
// catalog load completes.
func NewHolder(e *Engine) *Holder {
	h := &Holder{}
	if e != nil {
		h.engine.Store(e)
	}
	return h
}

// Load returns the active engine, or nil if none has been stored.
func (h *Holder) Load() *Engine {
	return h.engine.Load()
}

// Swap installs e and returns the previous engine. The previous engine's
// result caches are emptied; it still answers queries already in flight.
func (h *Holder) Swap(e *Engine) *Engine {
	h.swaps.Add(1)
	prev := h.engine.Swap(e)
	if prev != nil && prev != e {
		prev.purgeCaches()
	}
	return prev
}

// Swaps returns how many times Swap has been called.
func (h *Holder) Swaps() int64 {
	return h.swaps.Load()
}
