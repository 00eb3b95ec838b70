// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/academicworld/internal/logging"
)

const defaultDrainTimeout = 10 * time.Second

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService serves the dashboard API until its context is canceled,
// then drains in-flight widget and favorites requests.
type HTTPServerService struct {
	server HTTPServer
	drain  time.Duration
}

// NewHTTPServerService wraps server. A non-positive drain timeout means 10s.
func NewHTTPServerService(server HTTPServer, drain time.Duration) *HTTPServerService {
	if drain <= 0 {
		drain = defaultDrainTimeout
	}
	return &HTTPServerService{server: server, drain: drain}
}

// listen blocks in ListenAndServe. A server closed by Shutdown yields nil.
func (h *HTTPServerService) listen() error {
	err := h.server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http server failed: %w", err)
}

// Serve implements suture.Service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	stopped := make(chan error, 1)
	go func() { stopped <- h.listen() }()

	select {
	case err := <-stopped:
		return err
	case <-ctx.Done():
	}

	// ctx is already done; draining needs its own deadline.
	drainCtx, cancel := context.WithTimeout(context.Background(), h.drain)
	defer cancel()

	logging.Info().Dur("timeout", h.drain).Msg("Draining HTTP connections")
	if err := h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	<-stopped
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return "http-server"
}
