package wsource

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// syncBuffer is a bytes.Buffer safe for the server goroutines to log into.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestServer(t *testing.T, options ...Option) (*Source, *httptest.Server, *syncBuffer) {
	t.Helper()
	logs := &syncBuffer{}
	options = append(options, WithLogger(log.New(logs, "", 0)))
	src := New(options...)
	srv := httptest.NewServer(src)
	t.Cleanup(srv.Close)
	return src, srv, logs
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg string) {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("WriteMessage() error: %v", err)
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEventsQueuedUntilPump(t *testing.T) {
	src, srv, _ := newTestServer(t, WithSize(800, 600))

	var got []input.Event
	sub := src.Subscribe(func(ev input.Event) { got = append(got, ev) })
	defer sub.Unsubscribe()

	conn := dial(t, srv)
	send(t, conn, `{"type":"pointerdown","button":0,"x":10,"y":20}`)
	send(t, conn, `{"type":"pointermove","x":30,"y":20}`)
	send(t, conn, `{"type":"touchstart","touches":[{"id":1,"x":1,"y":2},{"id":2,"x":3,"y":4}]}`)

	waitFor(t, "queued events", func() bool { return src.Pending() == 3 })
	if len(got) != 0 {
		t.Fatalf("events delivered before Pump: %v", got)
	}

	if n := src.Pump(); n != 3 {
		t.Errorf("Pump() = %d, want 3", n)
	}
	if len(got) != 3 {
		t.Fatalf("delivered %d events, want 3", len(got))
	}
	if got[0].Type != input.EventPointerDown || got[0].X != 10 || got[0].Y != 20 {
		t.Errorf("first event = %+v", got[0])
	}
	if got[2].Type != input.EventTouchStart || len(got[2].Touches) != 2 {
		t.Errorf("third event = %+v", got[2])
	}
	if src.Pump() != 0 {
		t.Error("second Pump() delivered events")
	}
}

func TestResizeAndMalformedMessages(t *testing.T) {
	src, srv, logs := newTestServer(t, WithSize(800, 600))
	if src.Width() != 800 || src.Height() != 600 {
		t.Fatalf("initial size = %dx%d", src.Width(), src.Height())
	}

	conn := dial(t, srv)
	send(t, conn, `not json`)
	send(t, conn, `{"type":"pinch"}`)
	send(t, conn, `{"type":"resize","width":1024,"height":768}`)

	waitFor(t, "resize", func() bool { return src.Width() == 1024 && src.Height() == 768 })
	if src.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", src.Pending())
	}
	waitFor(t, "decode errors logged", func() bool {
		out := logs.String()
		return strings.Contains(out, "malformed message") && strings.Contains(out, "failed to decode event")
	})
}

func TestCloseDisconnectsClients(t *testing.T) {
	src, srv, _ := newTestServer(t)
	conn := dial(t, srv)
	waitFor(t, "client registration", func() bool { return src.Clients() == 1 })

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("ReadMessage() error = %v, want normal closure", err)
	}
	waitFor(t, "client removal", func() bool { return src.Clients() == 0 })

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial() after Close succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("response = %v, want 503", resp)
	}
}
