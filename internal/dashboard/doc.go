// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package dashboard maps each dashboard widget to exactly one store call and
shapes the rows the widget renders.

Service serves widgets 1 to 6 plus the dropdown option lists and defaults.
Favorites owns widgets 7 to 9: it applies a favorite keyword mutation, reads
the favorites set back and derives both recommendation tables from that one
snapshot.

Stores are consumed through small interfaces declared here, so the package
does not care whether the relational side is DuckDB or PostgreSQL:

	svc := dashboard.NewService(db, docs, &cfg.Dashboard)
	favs := dashboard.NewFavorites(db, graphStore, cfg.Dashboard.QueryTimeout)
	favs.SetNotifier(hub)

Result slices are never nil, so they always encode as JSON arrays.
*/
package dashboard
