// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package api serves the dashboard over HTTP using the chi router.

Routes:

	GET    /api/v1/health/live
	GET    /api/v1/health/ready
	GET    /api/v1/dashboard/options
	GET    /api/v1/dashboard/defaults
	GET    /api/v1/widgets/keyword-publications?limit=N
	GET    /api/v1/widgets/top-publications?keyword=K
	GET    /api/v1/widgets/faculty-topics?university=U
	GET    /api/v1/widgets/publication-topics?university=U
	GET    /api/v1/widgets/spotlight?keyword=K
	GET    /api/v1/favorites
	POST   /api/v1/favorites
	DELETE /api/v1/favorites
	GET    /api/v1/ws
	GET    /metrics

Every JSON response uses the models.APIResponse envelope. Errors carry one of
the codes in errors.go. A favorites read that failed after a snapshot was
already served answers 502 STALE_SNAPSHOT with that snapshot in data.
*/
package api
