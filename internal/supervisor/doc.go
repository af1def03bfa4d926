// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

/*
Package supervisor runs long-lived services under a suture v4 tree.

	digitaltwin (root)
	└── api-layer
	    └── http-server

Failed services restart with suture's backoff. Supervisor events go to a
slog logger, usually logging.NewSlogLogger("supervisor"), via sutureslog.

Usage:

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	err := tree.Serve(ctx)
*/
package supervisor
