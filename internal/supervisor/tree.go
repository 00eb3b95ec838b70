// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Layer selects the child supervisor a service runs under. Layers start in
// declaration order, so the hub is up before the HTTP server accepts
// websocket upgrades.
type Layer int

const (
	// LayerMessaging holds the websocket hub.
	LayerMessaging Layer = iota
	// LayerAPI holds the HTTP server.
	LayerAPI

	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerMessaging:
		return "messaging-layer"
	case LayerAPI:
		return "api-layer"
	default:
		return fmt.Sprintf("layer-%d", int(l))
	}
}

// TreeConfig holds supervisor tree configuration.
type TreeConfig struct {
	// FailureThreshold is the number of failures before entering backoff.
	FailureThreshold float64

	// FailureDecay is the rate at which failures decay, in seconds.
	FailureDecay float64

	// FailureBackoff is how long to wait once the threshold is exceeded.
	FailureBackoff time.Duration

	// ShutdownTimeout bounds how long each service gets to stop.
	ShutdownTimeout time.Duration
}

// DefaultTreeConfig matches suture's own defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func (c TreeConfig) withDefaults() TreeConfig {
	d := DefaultTreeConfig()
	if c.FailureThreshold == 0 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.FailureDecay == 0 {
		c.FailureDecay = d.FailureDecay
	}
	if c.FailureBackoff == 0 {
		c.FailureBackoff = d.FailureBackoff
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}

func (c TreeConfig) spec() suture.Spec {
	return suture.Spec{
		FailureThreshold: c.FailureThreshold,
		FailureDecay:     c.FailureDecay,
		FailureBackoff:   c.FailureBackoff,
		Timeout:          c.ShutdownTimeout,
	}
}

// SupervisorTree is the root supervisor with one child per Layer.
type SupervisorTree struct {
	root   *suture.Supervisor
	layers [layerCount]*suture.Supervisor
	config TreeConfig
}

// NewSupervisorTree builds the tree. Zero config fields take the defaults.
// Events of every layer are logged through logger.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) (*SupervisorTree, error) {
	if logger == nil {
		return nil, fmt.Errorf("supervisor tree requires a logger")
	}
	config = config.withDefaults()

	// MustHook has a pointer receiver.
	handler := &sutureslog.Handler{Logger: logger}
	rootSpec := config.spec()
	rootSpec.EventHook = handler.MustHook()

	t := &SupervisorTree{
		root:   suture.New("academicworld", rootSpec),
		config: config,
	}
	for l := Layer(0); l < layerCount; l++ {
		t.layers[l] = suture.New(l.String(), config.spec())
		t.root.Add(t.layers[l])
	}
	return t, nil
}

// Add runs svc under the given layer.
func (t *SupervisorTree) Add(layer Layer, svc suture.Service) (suture.ServiceToken, error) {
	if layer < 0 || layer >= layerCount {
		return suture.ServiceToken{}, fmt.Errorf("unknown supervisor layer %d", int(layer))
	}
	return t.layers[layer].Add(svc), nil
}

// ServeBackground runs the tree in a goroutine until ctx is canceled. The
// channel receives exactly one result when the tree stops and is never
// closed, so callers must receive from it once rather than range over it.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// Serve runs the tree until ctx is canceled.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// UnstoppedServiceReport lists services that missed the shutdown timeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
