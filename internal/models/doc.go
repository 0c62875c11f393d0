// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package models defines the API data transfer objects for Animerec.

Key Components:

  - APIResponse: Standardized response wrapper used by every endpoint
  - APIError: Machine-readable error code plus message
  - Metadata: Response timestamp and query time
  - Anime, AnimeList, AnimeDetail: Catalog titles as rendered by the API
  - HistoryResponse: A session's recent queries and result sets
  - CatalogStats, HealthStatus: Operational endpoints

Usage Example:

	resp := models.NewSuccess(models.AnimeList{
	    Title: "Recommendations based on Naruto",
	    Items: items,
	    Found: len(items),
	}, time.Since(start))

These types carry JSON tags only; they are encoded with goccy/go-json by the
API and render packages.
*/
package models
