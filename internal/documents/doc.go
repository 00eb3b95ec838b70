// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package documents reads the denormalized publication and faculty documents
held in MongoDB.

Two collections are used:

	publications  {title, numCitations, keywords: [{name, score}]}
	faculty       {name, affiliation: {name}, keywords: [{name}]}

Both widgets backed by this store are aggregation pipelines. The pipeline
builders are pure functions so their shape can be tested without a server:

	store, err := documents.Connect(ctx, &cfg.Documents, breaker.New("documents", cfg.Breaker))
	rows, err := store.TopPublicationsForKeyword(ctx, "data mining")

Every call is timed into store_query_duration_seconds{store="documents"} and
routed through the store's circuit breaker.
*/
package documents
