// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package supervisor provides process supervision for Animerec using suture v4.

The tree keeps the long-running services apart so that a failing catalog
reload cannot stop the API from answering with the last good engine:

	RootSupervisor ("animerec")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogReloadService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. The catalog layer
uses its own, longer TreeConfig.CatalogBackoff. Supervisor events are
logged through sutureslog, bridged to zerolog by logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.Logger()), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddCatalogService(services.NewCatalogReloadService(loader, holder, engineCfg, reloadCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

See the services subpackage for the service wrappers.
*/
package supervisor
