// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

/*
Package supervisor runs the long-lived services of the server under a suture v4
supervisor tree.

	RootSupervisor ("vibesearch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService (when the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The corpus and similarity matrix are built before the tree starts and are never
mutated, so nothing in the tree owns request state. A crash in the maintenance
layer restarts the janitor without touching the HTTP server.

Supervisor events are logged through sutureslog using an slog.Logger, which
main wires to zerolog via logging.NewSlogLogger.
*/
package supervisor
