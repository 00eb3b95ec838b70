// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package metrics declares the Prometheus collectors exported on /metrics.

Collectors are registered on the default registry through promauto at package
init, so importing the package is enough to expose them. Record* helpers keep
label handling in one place:

	start := time.Now()
	rows, err := db.QueryContext(ctx, q, args...)
	metrics.RecordStoreQuery(metrics.StoreRelational, "top_keywords", time.Since(start), err)

Groups:

  - store_*: per store and operation latency and errors (relational, documents, graph)
  - api_*: request counts, latency and in-flight requests
  - circuit_breaker_*: breaker state, outcomes and transitions
  - favorites_*: favorites mutations by outcome
  - websocket_*: connected dashboards and pushed messages
*/
package metrics
