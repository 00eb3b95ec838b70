// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBufferSize = 64
)

// clientIDCounter orders clients for deterministic broadcast order.
var clientIDCounter atomic.Uint64

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	id        uint64
	sessionID string
	hub       *Hub
	conn      *websocket.Conn
	send      chan Message

	// pong carries ping replies from readPump to writePump. Only the hub
	// closes send, so readPump never writes to it.
	pong chan struct{}
}

// NewClient wraps conn. Register it with the hub, then call Start.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:        clientIDCounter.Add(1),
		sessionID: uuid.NewString(),
		hub:       hub,
		conn:      conn,
		send:      make(chan Message, sendBufferSize),
		pong:      make(chan struct{}, 1),
	}
}

// ID returns the ordering ID.
func (c *Client) ID() uint64 {
	return c.id
}

// SessionID returns the random ID used in logs.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Enqueue queues msg for this client only, such as the initial snapshot
// after connect. It reports false when the buffer is full.
//
// Call it before Register, while the hub cannot yet have closed the send
// channel.
func (c *Client) Enqueue(msg Message) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				metrics.WSErrors.WithLabelValues("read").Inc()
				logging.Warn().Err(err).Str("client_id", c.sessionID).Msg("unexpected websocket close")
			}
			return
		}

		if msg.Type == MessageTypePing {
			// A reply is already pending when the buffer is full.
			select {
			case c.pong <- struct{}{}:
			default:
			}
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Error().Err(err).Msg("failed to set write deadline")
				return
			}
			if !ok {
				// The hub closed the channel.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				metrics.WSErrors.WithLabelValues("write").Inc()
				logging.Warn().Err(err).Str("client_id", c.sessionID).Msg("failed to write websocket message")
				return
			}
			metrics.WSMessagesSent.Inc()

		case <-c.pong:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteJSON(Message{Type: MessageTypePong}); err != nil {
				metrics.WSErrors.WithLabelValues("write").Inc()
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start launches the read and write goroutines.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
