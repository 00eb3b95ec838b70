// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/academicworld/internal/breaker"
	"github.com/tomtom215/academicworld/internal/dashboard"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/models"
	"github.com/tomtom215/academicworld/internal/validation"
)

// respondJSON writes response with an ETag over the encoded body.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag hashes data with FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error envelope. err, when set, is only logged.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorWithData(w, status, code, message, nil, err)
}

func respondErrorWithData(w http.ResponseWriter, status int, code, message string, data interface{}, err error) {
	if err != nil {
		logging.Error().
			Str("code", code).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondStoreError maps a widget or store error to its status and code.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboard.ErrInvalidLimit):
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, breaker.ErrStoreUnavailable):
		respondError(w, http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "A data store is temporarily unavailable", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "A data store did not answer in time", err)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeQuery, "Query failed", err)
	}
}

// validateRequest runs the validator tags on v.
func validateRequest(v interface{}) *models.APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	apiErr := verr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// respondValidation writes a 400 for a failed validateRequest.
func respondValidation(w http.ResponseWriter, apiErr *models.APIError) {
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// requireMethod answers 405 and returns false when r.Method is not method.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, ErrMethodNotAllowed.Error(), nil)
		return false
	}
	return true
}

// getIntParam parses an integer query parameter. Missing uses defaultValue;
// unparseable values become 0 so validation rejects them.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// getStringParam returns the query parameter or defaultValue when absent.
func getStringParam(r *http.Request, key, defaultValue string) string {
	q := r.URL.Query()
	if !q.Has(key) {
		return defaultValue
	}
	return q.Get(key)
}
