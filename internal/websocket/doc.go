// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package websocket pushes favorites updates to every open dashboard.

The favorites set is global, so a keyword added in one browser changes the
recommendation tables shown in all others. After every fresh favorites result
the coordinator calls Hub.BroadcastFavorites and each connected client
receives:

	{"type": "favorites_updated", "data": {"favorites": [...], "recommended_faculty": [...], ...}}

Architecture:

The hub owns the client set and runs as a supervised service
(RunWithContext). Each Client has two goroutines:

  - readPump: reads client frames, answers {"type":"ping"} with a pong
  - writePump: writes queued messages and keepalive pings

A client whose send buffer is full is dropped rather than blocking the
broadcast.

Usage:

	hub := websocket.NewHub()
	// supervised: services.NewWebSocketHubService(hub)

	conn, err := upgrader.Upgrade(w, r, nil)
	client := websocket.NewClient(hub, conn)
	hub.Register <- client
	client.Start()

Timeouts:

  - writeWait: 10 seconds per write
  - pongWait: 60 seconds without a pong closes the connection
  - pingPeriod: 54 seconds
  - maxMessageSize: 64 KB inbound
*/
package websocket
