// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package config provides configuration management for Animerec.

Configuration is loaded with Koanf v2 from three layers, each overriding the
previous one:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/animerec/config.yaml and /etc/animerec/config.yml
 3. Environment variables, mapped explicitly (unknown variables are ignored)

Sections:

  - server: listen address, timeouts, environment
  - logging: zerolog level, format, caller
  - catalog: CSV path, minimum rating, reload interval, DuckDB tuning,
    circuit breaker
  - recommend: genre analyzer, candidate and result limits, result cache
  - history: memory or badger store, path, per-session cap, TTL
  - security: CORS origins and rate limiting

Example config.yaml:

	catalog:
	  path: /data/anime.csv
	  reload_interval: 1h
	recommend:
	  analyzer: genre
	  seed_candidates: 200
	history:
	  store: badger
	  path: /data/history

Environment Variables:

	HTTP_PORT=8501
	CATALOG_PATH=/data/anime.csv
	RECOMMEND_ANALYZER=word
	HISTORY_STORE=badger
	CORS_ORIGINS=https://example.com,https://app.example.com

Usage:

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}

LoadWithKoanf validates the result; an invalid configuration is an error
describing the offending setting by its environment variable name.
*/
package config
