// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package cache provides a thread-safe in-memory LRU cache with TTL support.

The recommendation engine uses it to memoize query results. Engines are
immutable per catalog load, so a result is valid until its TTL elapses or the
engine is replaced; each Engine owns its own Cache.

# Overview

The cache provides:
  - Generic values (Cache[V])
  - O(1) Get, Set and Delete via a map plus a doubly-linked recency list
  - Least-recently-used eviction at capacity
  - Lazy TTL expiration on Get (no background goroutine)
  - Hit, miss and eviction statistics

# Usage Example

	c := cache.New[*recommend.GenreResult](1000, 5*time.Minute)

	key := cache.GenerateKey("genre", req)
	if res, ok := c.Get(key); ok {
	    return res, nil
	}
	res := compute()
	c.Set(key, res)

# Thread Safety

All methods are safe for concurrent use. A single mutex guards both the map
and the recency list because Get mutates recency order.
*/
package cache
