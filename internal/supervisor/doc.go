// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package supervisor runs the long-lived services of the API under a suture v4
tree.

	RootSupervisor ("academicworld")
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocketHubService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The store clients (DuckDB/PostgreSQL, MongoDB, Neo4j) are plain handles opened
in main and closed after the tree stops. They have no goroutine of their own
to supervise, so there is no data layer.

A crash in the hub restarts only the hub; the API keeps serving widget
requests. Supervisor events are logged through sutureslog into zerolog:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	_, _ = tree.Add(supervisor.LayerMessaging, services.NewWebSocketHubService(hub))
	_, _ = tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
