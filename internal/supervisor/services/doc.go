// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package services provides suture.Service wrappers for Animerec components.

Each wrapper implements the suture.Service interface and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in the background
  - Shuts the server down gracefully on context cancellation

Catalog Reload (CatalogReloadService):
  - Loads the catalog and publishes the first engine
  - Rebuilds and swaps the engine on a ticker or on Trigger
  - Keeps the previous engine when a reload fails
*/
package services
