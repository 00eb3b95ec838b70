// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import "errors"

// ErrMethodNotAllowed is logged when a handler is reached with the wrong
// method outside the chi method routing (direct handler calls in tests).
var ErrMethodNotAllowed = errors.New("method not allowed")

// Error codes carried in models.APIError.Code.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeQuery            = "QUERY_ERROR"
	ErrCodeStaleSnapshot    = "STALE_SNAPSHOT"
	ErrCodeServiceUnavail   = "SERVICE_UNAVAILABLE"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
)
