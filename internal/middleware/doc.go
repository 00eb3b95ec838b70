// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

// Package middleware holds HTTP middleware shared by every route: request ID
// propagation into the logging context and Prometheus request metrics.
//
// Both are plain func(http.Handler) http.Handler and are installed on the chi
// router in internal/api.
package middleware
