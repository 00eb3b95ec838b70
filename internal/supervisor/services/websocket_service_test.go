// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/academicworld/internal/websocket"
)

type mockContextHub struct {
	runErr   error
	runCount atomic.Int32
}

func (m *mockContextHub) RunWithContext(ctx context.Context) error {
	m.runCount.Add(1)
	if m.runErr != nil {
		return m.runErr
	}
	<-ctx.Done()
	return ctx.Err()
}

var (
	_ suture.Service = (*WebSocketHubService)(nil)
	_ ContextHub     = (*websocket.Hub)(nil)
)

func TestWebSocketHubService_Serve(t *testing.T) {
	hub := &mockContextHub{}
	svc := NewWebSocketHubService(hub)
	if svc.String() != "websocket-hub" {
		t.Errorf("String() = %q", svc.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want DeadlineExceeded", err)
	}
	if hub.runCount.Load() != 1 {
		t.Errorf("RunWithContext called %d times, want 1", hub.runCount.Load())
	}
}

func TestWebSocketHubService_RestartedBySupervisor(t *testing.T) {
	hub := &mockContextHub{runErr: errors.New("hub crashed")}
	sup := suture.New("test", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(NewWebSocketHubService(hub))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	<-sup.ServeBackground(ctx)

	if hub.runCount.Load() < 2 {
		t.Errorf("hub ran %d times, want restarts", hub.runCount.Load())
	}
}
