// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package models defines the data shapes shared by the stores, the dashboard
service and the HTTP API.

Entity types (University, Keyword, Faculty, Publication, FavoriteKeyword) are
read-only projections of records held in the external stores. The keyword name
is the only key that correlates records across the relational, document and
graph stores.

Widget row types are the flat tables each dashboard widget renders:

  - KeywordPublicationCount: keywords ranked by publication count
  - PublicationScore: most cited publications for a keyword, with relevance score
  - TopicCount: keyword popularity at a university (faculty or publication counts)
  - FacultyProfile and PublicationCitation: the professor spotlight panel
  - RecommendedFaculty and RecommendedPublication: graph recommendations

All HTTP endpoints wrap their payload in APIResponse.
*/
package models
