// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

// Package services adapts the HTTP server and the websocket hub to
// suture.Service, translating ListenAndServe/Shutdown and RunWithContext into
// Serve(ctx). Each wrapper implements fmt.Stringer so suture logs name it.
package services
