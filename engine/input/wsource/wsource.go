// Package wsource serves an input.Source over websockets. Remote clients (a
// browser canvas, a test harness) send one JSON-encoded input.Event per text
// message; a {"type":"resize","width":W,"height":H} message updates the
// surface size. Events are queued by the connection readers and delivered to
// subscribers only when the render loop calls Pump.
package wsource

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

const (
	defaultReadLimit = 64 * 1024
	closeGracePeriod = time.Second
	resizeMessage    = "resize"
)

// Source is a websocket-backed input.Source. It implements http.Handler.
type Source struct {
	input.Dispatcher

	upgrader  websocket.Upgrader
	readLimit int64
	logger    *log.Logger
	queue     input.Queue

	width  atomic.Int64
	height atomic.Int64

	mu     sync.Mutex
	conns  map[uuid.UUID]*websocket.Conn
	closed bool
}

var (
	_ input.Source = &Source{}
	_ http.Handler = &Source{}
)

// envelope peeks at the message type before the full decode.
type envelope struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// New creates a websocket source.
//
// Parameters:
//   - options: functional options to configure the source
//
// Returns:
//   - *Source: the newly created source
func New(options ...Option) *Source {
	s := &Source{
		readLimit: defaultReadLimit,
		logger:    log.Default(),
		conns:     make(map[uuid.UUID]*websocket.Conn),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Source) Width() int {
	return int(s.width.Load())
}

func (s *Source) Height() int {
	return int(s.height.Load())
}

// Clients returns the number of connected clients.
func (s *Source) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Pending returns the number of events waiting for Pump.
func (s *Source) Pending() int {
	return s.queue.Len()
}

// Pump delivers every queued event to the subscribers on the caller's
// goroutine. Call it once per frame before the controls commit.
//
// Returns:
//   - int: number of events delivered
func (s *Source) Pump() int {
	return s.queue.Drain(s.Dispatch)
}

// ServeHTTP upgrades the request and reads events until the client goes away.
func (s *Source) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		http.Error(w, "input source closed", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		s.logger.Printf("[WSource] upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	conn.SetReadLimit(s.readLimit)

	id := uuid.New()
	if !s.register(id, conn) {
		conn.Close()
		return
	}
	s.logger.Printf("[WSource] client %s connected from %s", id, r.RemoteAddr)

	defer func() {
		s.unregister(id)
		conn.Close()
		s.logger.Printf("[WSource] client %s disconnected", id)
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("[WSource] client %s read error: %v", id, err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		if err := s.handleMessage(data); err != nil {
			s.logger.Printf("[WSource] client %s: %v", id, err)
		}
	}
}

// Close disconnects every client and refuses new ones.
//
// Returns:
//   - error: error if a close frame could not be sent
func (s *Source) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for _, conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	var firstErr error
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "input source closed")
	for _, conn := range conns {
		err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to send close frame: %w", err)
		}
	}
	return firstErr
}

func (s *Source) register(id uuid.UUID, conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[id] = conn
	return true
}

func (s *Source) unregister(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, id)
}

// handleMessage applies a resize or queues a decoded event.
func (s *Source) handleMessage(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("malformed message: %w", err)
	}

	if env.Type == resizeMessage {
		if env.Width < 0 || env.Height < 0 {
			return fmt.Errorf("invalid surface size %dx%d", env.Width, env.Height)
		}
		s.width.Store(int64(env.Width))
		s.height.Store(int64(env.Height))
		return nil
	}

	var ev input.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	s.queue.Push(ev)
	return nil
}
