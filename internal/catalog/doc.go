// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package catalog loads and cleans the anime catalog.

The CSV file is read with DuckDB's read_csv_auto into a temporary table and
cleaned in SQL:

  - rows with a NULL name, genre, rating or members are dropped
  - rows rated below Config.MinRating are dropped
  - duplicate (name, genre) pairs keep their first occurrence in file order
  - a NULL type becomes ""

Rows whose genre string yields no genre tokens are dropped afterwards in Go.
Extra columns such as anime_id and episodes are ignored.

# Reloading

BreakerLoader wraps any Loader in a sony/gobreaker circuit breaker so a
missing or corrupt file does not get re-read on every reload tick. Build
turns a load into a ready recommend.Engine and records catalog metrics:

	loader := catalog.NewBreakerLoader(catalog.NewDuckDBLoader(cfg), catalog.BreakerConfig{})
	engine, res, err := catalog.Build(ctx, loader, recommendCfg, logger)
*/
package catalog
