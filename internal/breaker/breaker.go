// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

// Package breaker puts a gobreaker circuit breaker in front of each external
// store so a dead MongoDB or Neo4j fails requests fast instead of stacking up
// timeouts.
//
// One Breaker exists per store. Calls go through Do:
//
//	rows, err := breaker.Do(s.cb, func() ([]models.TopicCount, error) {
//	    return s.aggregateTopics(ctx, university)
//	})
//
// A nil *Breaker is valid and calls fn directly, which is how breakers are
// disabled (config breaker.enabled=false) and how store tests run.
package breaker

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/metrics"
)

// ErrStoreUnavailable is returned while a breaker rejects calls.
var ErrStoreUnavailable = errors.New("store unavailable")

// Breaker guards one store.
type Breaker struct {
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// New creates the breaker for store name. It returns nil when breakers are
// disabled.
//
// The breaker opens when at least cfg.MinRequests calls were made in the
// current interval and the failure ratio reaches cfg.FailureRatio. After
// cfg.Timeout it lets cfg.MaxRequests trial calls through.
func New(name string, cfg config.BreakerConfig) *Breaker {
	if !cfg.Enabled {
		return nil
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				logging.Warn().
					Str("store", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			return false
		},

		// A client that hung up says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("store", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &Breaker{cb: cb, name: name}
}

// Name returns the store name the breaker guards, or "" for a nil breaker.
func (b *Breaker) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// State returns closed, half-open or open. A nil breaker is always closed.
func (b *Breaker) State() string {
	if b == nil {
		return stateToString(gobreaker.StateClosed)
	}
	return stateToString(b.cb.State())
}

// Do runs fn through the breaker. Rejections are wrapped in ErrStoreUnavailable.
func Do[T any](b *Breaker, fn func() (T, error)) (T, error) {
	if b == nil {
		return fn()
	}

	var zero T
	result, err := b.cb.Execute(func() (any, error) {
		v, err := fn()
		return v, err
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return zero, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, b.name, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).
			Set(float64(b.cb.Counts().ConsecutiveFailures))
		return zero, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)

	typed, ok := result.(T)
	if !ok {
		// fn returned a nil interface value for an interface T.
		return zero, nil
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "closed"
	}
}
