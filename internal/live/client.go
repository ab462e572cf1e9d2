package live

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// EventSubscribed acknowledges a subscription frame. Its data is the list of
// events the subscriber now receives; empty means every event.
const EventSubscribed = "subscribed"

const (
	sendBufferSize = 16
	pingInterval   = 30 * time.Second
	writeTimeout   = 10 * time.Second
)

// subscription is the frame a subscriber sends to choose its events:
//
//	{"events": ["challenge_completed"]}
//
// An empty list subscribes to everything again.
type subscription struct {
	Events []string `json:"events"`
}

// Client is a single websocket subscriber and the events it asked for.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	events map[string]struct{}
}

// NewClient creates a Client tied to hub and conn. With no events it
// receives everything.
func NewClient(hub *Hub, conn *websocket.Conn, events ...string) *Client {
	c := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	c.Subscribe(events...)
	return c
}

// Subscribe replaces the client's event filter. Blank names are ignored.
func (c *Client) Subscribe(events ...string) {
	set := make(map[string]struct{}, len(events))
	for _, e := range events {
		if e = strings.TrimSpace(e); e != "" {
			set[e] = struct{}{}
		}
	}
	c.mu.Lock()
	c.events = set
	c.mu.Unlock()
}

// Wants reports whether event passes the client's filter.
func (c *Client) Wants(event string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.events) == 0 {
		return true
	}
	_, ok := c.events[event]
	return ok
}

// Events returns the subscribed event names in order, or an empty slice when
// the client takes everything.
func (c *Client) Events() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.events))
	for e := range c.events {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Run registers the client, starts the write pump, and runs the read pump.
// It blocks until the connection is closed, then unregisters.
func (c *Client) Run(ctx context.Context) {
	c.hub.Register(c)
	defer c.hub.Unregister(c)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.writePump(ctx)
	c.readPump(ctx)
}

// readPump applies subscription frames until the connection closes.
// Frames that are not valid subscriptions are logged and skipped.
func (c *Client) readPump(ctx context.Context) {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return
		}
		var sub subscription
		if err := json.Unmarshal(data, &sub); err != nil {
			c.hub.logger.DebugContext(ctx, "ignoring live frame", "error", err)
			continue
		}
		c.Subscribe(sub.Events...)
		c.deliver(Message{Type: EventSubscribed, At: c.hub.now(), Data: c.Events()})
	}
}

// deliver queues msg for this client alone, dropping it when the buffer is full.
func (c *Client) deliver(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.hub.logger.Error("marshal live message", "type", msg.Type, "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.hub.logger.Warn("live client buffer full, dropping message", "type", msg.Type)
	}
}

// writePump drains the send channel to the socket and pings periodically so
// stale connections are noticed.
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
